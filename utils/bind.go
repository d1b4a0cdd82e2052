package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindStrictJSON decodes the request body into dst, rejecting unknown
// fields so clients cannot smuggle server-assigned values (id, timestamps,
// host/guest, total_price) into a write shape, then runs the binding
// validators.
func BindStrictJSON(c *gin.Context, dst interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(dst)
}
