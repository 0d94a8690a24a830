package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"fuego/shared/failure"
	"fuego/shared/validator"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	ClientName string `json:"clientName" validate:"required,max=100"`
	Phone      string `json:"phone"      validate:"required,max=20"`
	Date       string `json:"date"       validate:"required,datetime=2006-01-02"`
}

func TestValidate_Success(t *testing.T) {
	body := strings.NewReader(`{"clientName":"Maria Silva","phone":"(11) 99999-9999","date":"2025-02-01"}`)

	payload := samplePayload{}
	err := validator.Validate(body, &payload)

	assert.NoError(t, err)
	assert.Equal(t, "Maria Silva", payload.ClientName)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	body := strings.NewReader(`{"clientName":"","phone":"(11) 99999-9999","date":"2025-02-01"}`)

	payload := samplePayload{}
	err := validator.Validate(body, &payload)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "ClientName")
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"clientName":`)

	payload := samplePayload{}
	err := validator.Validate(body, &payload)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidate_BadDateLayout(t *testing.T) {
	body := strings.NewReader(`{"clientName":"Maria","phone":"11999999999","date":"01/02/2025"}`)

	payload := samplePayload{}
	err := validator.Validate(body, &payload)

	assert.Error(t, err)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=pending confirmed cancelled"))
	assert.Error(t, validator.ValidateVar("done", "oneof=pending confirmed cancelled"))
}
