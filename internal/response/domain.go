package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formhive/formhive-backend/internal/model"
)

// FailValidation maps a domain ValidationError onto the response
// envelope. The field map names the specific offending question or
// field, never a generic failure.
func FailValidation(c *gin.Context, ve *model.ValidationError) {
	fields := map[string]string{}
	if ve.Field != "" {
		fields[ve.Field] = ve.Message
	} else {
		fields["detail"] = ve.Message
	}
	FailWithFields(c, http.StatusBadRequest, ErrCode(ve.Code), fields)
}
