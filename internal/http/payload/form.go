package payload

import (
	"txledger/internal/core"

	"github.com/jellydator/validation"
)

// FieldRequest updates one form field. Only the field name is checked.
type FieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (f FieldRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Field,
			validation.Required,
			validation.In(core.FieldAddressTo, core.FieldAmount, core.FieldMessage, core.FieldKeyword),
		),
	)
}
