package dto

type GenerateCopyRequest struct {
	DishName        string `json:"dishName"        validate:"required,max=100"`
	DishDescription string `json:"dishDescription" validate:"required,max=500"`
	Tone            string `json:"tone"            validate:"required,oneof=formal divertido urgente"`
}

type GenerateCopyResponse struct {
	Copy string `json:"copy"`
}
