package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/littlelemon/restaurant-api/middlewares"
	"github.com/littlelemon/restaurant-api/repository"
	"github.com/littlelemon/restaurant-api/serializers"
	"github.com/littlelemon/restaurant-api/utils"
	"github.com/sirupsen/logrus"
)

const maxMultipartMemory = 10 << 20

var (
	errNotFound      = errors.New("not found")
	errConflict      = errors.New("record already exists")
	errInternal      = errors.New("internal server error")
	errValidation    = errors.New("validation failed")
	errMalformedBody = errors.New("malformed request body")
)

// parseID reads the :id path parameter. Anything but a positive integer
// cannot name a record.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusNotFound, errNotFound)
		return 0, false
	}
	return uint(id), true
}

// bindData reads a JSON, urlencoded or multipart body into raw field values.
// An empty body yields no fields.
func bindData(c *gin.Context) (serializers.Data, bool) {
	data := serializers.Data{}

	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		var err error
		if c.ContentType() == binding.MIMEMultipartPOSTForm {
			err = c.Request.ParseMultipartForm(maxMultipartMemory)
		} else {
			err = c.Request.ParseForm()
		}
		if err != nil {
			respondMalformed(c, err)
			return nil, false
		}
		for name, values := range c.Request.PostForm {
			if len(values) == 0 {
				continue
			}
			raw, _ := json.Marshal(values[0])
			data[name] = raw
		}
		return data, true
	}

	if err := c.ShouldBindJSON(&data); err != nil && !errors.Is(err, io.EOF) {
		respondMalformed(c, err)
		return nil, false
	}
	return data, true
}

func respondMalformed(c *gin.Context, err error) {
	utils.RespondValidation(c, http.StatusBadRequest, errMalformedBody.Error(),
		serializers.ValidationError{"non_field_errors": {err.Error()}})
}

// respondDecodeError answers a failed body decode with the per-field errors.
func respondDecodeError(c *gin.Context, err error) {
	var verr serializers.ValidationError
	if errors.As(err, &verr) {
		utils.RespondValidation(c, http.StatusBadRequest, errValidation.Error(), verr)
		return
	}
	utils.RespondError(c, http.StatusBadRequest, err)
}

// respondStoreError maps gateway errors onto status codes. Anything that is
// not a missing or duplicate record is logged and reported as a 500.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, errNotFound)
	case errors.Is(err, repository.ErrConflict):
		utils.RespondError(c, http.StatusConflict, errConflict)
	default:
		utils.ErrorLogger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": middlewares.GetRequestID(c),
		}).WithError(err).Error("storage failure")
		utils.RespondError(c, http.StatusInternalServerError, errInternal)
	}
}
