package payload

import (
	"github.com/jellydator/validation"
)

type ItemRequest struct {
	Text string `json:"text"`
}

func (i ItemRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Text, validation.Required),
	)
}
