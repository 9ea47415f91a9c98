package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/mystore/catalog/internal/core/domain"
	"github.com/mystore/catalog/internal/core/port"
	"github.com/mystore/catalog/pkg/schema"
)

var _ port.ChangesProducer = (*ChangesProducer)(nil)

// A ChangesProducer publishes [domain.ProductChange] events.
// Records are keyed by the catalog id so the feed stays ordered
// per product.
type ChangesProducer struct {
	cl       ProducerClient
	encoder  Encoder
	opPrefix string
}

func NewChangesProducer(opts ...ProducerOpt) (ChangesProducer, error) {
	const op = "NewChangesProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ChangesProducer{}, opErr(err, op)
		}
	}

	return ChangesProducer{
		cl:       options.cl,
		encoder:  options.encoder,
		opPrefix: "ChangesProducer",
	}, nil
}

func (p ChangesProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ChangesProducer) ProduceChange(
	ctx context.Context, c domain.ProductChange,
) error {
	const op = "ProduceChange"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(c)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p ChangesProducer) createRecord(
	c domain.ProductChange,
) (*kgo.Record, error) {
	b, err := p.encoder.Encode(p.toSchema(c))
	if err != nil {
		return nil, err
	}
	key := []byte(strconv.Itoa(c.Product.ID))
	return &kgo.Record{Key: key, Value: b}, nil
}

func (ChangesProducer) toSchema(c domain.ProductChange) schema.ProductChangeV1 {
	v := c.Product
	return schema.ProductChangeV1{
		Op: string(c.Op),
		Product: schema.ProductV1{
			ID:          v.ID,
			Name:        v.Name,
			Price:       v.Price,
			Category:    v.Category,
			SubCategory: v.SubCategory,
			Description: v.Description,
			Image:       v.Image,
			Images:      v.Images,
			Sizes:       v.Sizes,
			Rating:      v.Rating,
			Reviews:     v.Reviews,
		},
	}
}
