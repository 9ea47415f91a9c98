package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

// Serde encodes and decodes one event type with its compiled-in
// avro schema. No schema registry is involved.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type serde struct {
	avroSchema avro.Schema
}

func newSerde(op, schemaText string) (Serde, error) {
	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return serde{avroSchema}, nil
}

func (s serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}
