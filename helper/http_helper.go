package helper

import (
	"net/http"
	"reflect"

	"conduit-api/logger"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
)

// HTTPHelper is the single boundary translator: every handler hands it either
// a result entity or a domain error, and it owns the response envelopes.
// Success: {"<entity>": ...}. Failure: {"errors": {"body": [...]}}.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps a domain error kind to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorUnauthorized":
			statusCode = http.StatusUnauthorized
		case "models.ErrorForbidden":
			statusCode = http.StatusForbidden
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		case "models.ErrorFieldRequired":
			statusCode = http.StatusUnprocessableEntity
		case "models.ErrorAlreadyTaken":
			statusCode = http.StatusUnprocessableEntity
		case "models.ErrorValidation":
			statusCode = http.StatusUnprocessableEntity
		default:
			statusCode = http.StatusInternalServerError
		}
	}

	return statusCode
}

// SendSuccess ...
// Send an entity envelope to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, entity string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{entity: data})
}

// SendCreated ...
// Same envelope as SendSuccess, 201 status.
func (u *HTTPHelper) SendCreated(c *gin.Context, entity string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{entity: data})
}

// SendMessage ...
// Send an informational message list, e.g. after a delete.
func (u *HTTPHelper) SendMessage(c *gin.Context, messages ...string) {
	c.JSON(http.StatusOK, gin.H{"message": gin.H{"body": messages}})
}

// SendFailure ...
// Translate a domain error into status + error envelope. Unknown errors are
// logged and surfaced as a generic 500 without internal detail.
func (u *HTTPHelper) SendFailure(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Log.Error("unexpected error", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(status, gin.H{"errors": gin.H{"body": []string{"Something went wrong"}}})
		return
	}

	c.JSON(status, gin.H{"errors": gin.H{"body": []string{err.Error()}}})
}

// SendBadRequest ...
// Malformed request bodies never reach the domain layer.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"body": []string{message}}})
}

// SendValidationError ...
// Send translated binding validation failures to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	body := []string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		body = append(body, errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"body": body}})
}
