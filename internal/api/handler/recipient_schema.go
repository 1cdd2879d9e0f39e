package handler

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexBool accepts a JSON boolean or the strings "true"/"false" in any case.
// Submission forms serialize checkboxes as strings, so both spellings reach
// the API.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		*b = FlexBool(v)
		return nil
	case string:
		switch strings.ToLower(v) {
		case "true":
			*b = true
			return nil
		case "false":
			*b = false
			return nil
		}
	}

	return fmt.Errorf("invalid boolean value %s", data)
}

type createRecipientRequest struct {
	Email       string    `json:"email" validate:"required,email"`
	Name        string    `json:"name,omitempty" validate:"omitempty,max=100"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=255"`
	Active      *FlexBool `json:"active"`
}

type updateRecipientRequest struct {
	Email       *string   `json:"email" validate:"omitempty,email"`
	Name        *string   `json:"name"  validate:"omitempty,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=255"`
	Active      *FlexBool `json:"active"`
}
