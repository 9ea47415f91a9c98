package schema

const ProductChangeSchemaTextV1 = `{
	"type": "record",
	"namespace": "catalog",
	"name": "product_change",
	"fields": [
		{"name": "op", "type": "string"},
		{"name": "product", "type": {
			"type": "record",
			"name": "product",
			"fields": [
				{"name": "id", "type": "long"},
				{"name": "name", "type": "string"},
				{"name": "price", "type": "double"},
				{"name": "category", "type": "string"},
				{"name": "sub_category", "type": "string"},
				{"name": "description", "type": "string"},
				{"name": "image", "type": "string"},
				{"name": "images", "type": {"type": "array", "items": "string"}},
				{"name": "sizes", "type": {"type": "array", "items": "string"}},
				{"name": "rating", "type": "double"},
				{"name": "reviews", "type": "long"}
			]
		}}
	]
}`

type (
	ProductChangeV1 struct {
		Op      string    `avro:"op"`
		Product ProductV1 `avro:"product"`
	}

	ProductV1 struct {
		ID          int      `avro:"id"`
		Name        string   `avro:"name"`
		Price       float64  `avro:"price"`
		Category    string   `avro:"category"`
		SubCategory string   `avro:"sub_category"`
		Description string   `avro:"description"`
		Image       string   `avro:"image"`
		Images      []string `avro:"images"`
		Sizes       []string `avro:"sizes"`
		Rating      float64  `avro:"rating"`
		Reviews     int      `avro:"reviews"`
	}
)

func NewSerdeProductChangeV1() (Serde, error) {
	const op = "NewSerdeProductChangeV1"
	return newSerde(op, ProductChangeSchemaTextV1)
}
