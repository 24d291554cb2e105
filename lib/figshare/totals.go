package figshare

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Totals maps each counter to its all-time value.
type Totals map[Counter]int64

type totalsResponse struct {
	Totals int64 `json:"totals"`
}

// GetTotals fetches the all-time value of every counter for a single item.
// Institution scoped queries require an institute on the client.
func (c *Client) GetTotals(ctx context.Context, itemId int64, item ItemType, institution bool) (Totals, error) {
	ctx, span := tracer.Start(ctx, "client:GetTotals")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("item_id", itemId),
		attribute.String("item_type", string(item)),
	)

	if !item.Valid() {
		span.RecordError(InvalidItemType)
		span.SetStatus(codes.Error, "invalid item type")
		return nil, InvalidItemType
	}

	totals := make(Totals, len(Counters))
	for _, counter := range Counters {
		requestPath, err := c.statsPath(
			institution,
			"total", string(counter), string(item),
			strconv.FormatInt(itemId, 10),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to build request path")
			return nil, err
		}

		res, err := issueRequest[totalsResponse](ctx, c.stats, requestPath, nil)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch totals")
			return nil, err
		}
		totals[counter] = res.Totals
	}

	return totals, nil
}

// GetUserTotals fetches the all-time totals aggregated over everything an
// author has published. The author id is not the institution user id, see
// ResolveAuthorIds for mapping one to the other.
func (c *Client) GetUserTotals(ctx context.Context, authorId int64) (Totals, error) {
	ctx, span := tracer.Start(ctx, "client:GetUserTotals")
	defer span.End()

	return c.GetTotals(ctx, authorId, ItemAuthor, false)
}
