package global

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// InternalLogger logs failures that should never happen in normal circumstances
var InternalLogger = log.New(io.Discard, "", log.LstdFlags)

// MonitorLogger logs client errors and operational events
var MonitorLogger = log.New(io.Discard, "", log.LstdFlags)

// VALID_NANOID_CHAR is the alphabet of request ids and media object names
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GMTTimeFormat is the RFC 1123 layout of Custom_Time_Alarm and Today_Time
const GMTTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Validator validates incoming bodys of data
var Validator = func() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("gmttime", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(GMTTimeFormat, fl.Field().String())
		return err == nil
	})
	return v
}()

// JSON is the codec for request bodies, responses and stored documents.
// Keys are matched case-sensitively so "a_title" never binds to A_Title.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// OpenLoggers points the internal and monitor loggers at append-only files
func OpenLoggers(internalPath string, monitorPath string) ([]io.Closer, error) {
	internalFile, err := os.OpenFile(internalPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}

	monitorFile, err := os.OpenFile(monitorPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		internalFile.Close()
		return nil, err
	}

	InternalLogger = log.New(internalFile, "", log.LstdFlags)
	MonitorLogger = log.New(monitorFile, "", log.LstdFlags)

	return []io.Closer{internalFile, monitorFile}, nil
}
