package datetime

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const jsonEncoding = "application/json"

type Data struct {
	Encoding string `json:"encoding"`
	Data     []byte `json:"data"`
}

type Marshaller interface {
	Marshal(dt DateTime) (Data, error)
	Unmarshal(data Data) (DateTime, error)
}

type InvalidEncodingError struct {
	Expected string
	Actual   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("expected encoding %s, got %s", e.Expected, e.Actual)
}

func InvalidEncoding(expected string, actual string) error {
	return &InvalidEncodingError{
		Expected: expected,
		Actual:   actual,
	}
}

func NewJSONMarshaller() JSONMarshaller {
	return JSONMarshaller{}
}

type JSONMarshaller struct{}

func (JSONMarshaller) Marshal(dt DateTime) (Data, error) {
	data, err := json.Marshal(dt)
	if err != nil {
		return Data{}, errors.Wrap(err, "failed to marshal datetime")
	}

	return Data{
		Encoding: jsonEncoding,
		Data:     data,
	}, nil
}

func (JSONMarshaller) Unmarshal(data Data) (DateTime, error) {
	if data.Encoding != jsonEncoding {
		return DateTime{}, InvalidEncoding(jsonEncoding, data.Encoding)
	}

	var dt DateTime
	if err := json.Unmarshal(data.Data, &dt); err != nil {
		return DateTime{}, errors.Wrap(err, "failed to unmarshal datetime")
	}

	return dt, nil
}
