package figshare

import (
	"context"
	"sort"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TimelinePoint is one bucket of a counter timeline.
type TimelinePoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// Timeline maps each counter to its buckets in ascending date order.
type Timeline map[Counter][]TimelinePoint

type timelineResponse struct {
	Timeline map[string]int64 `json:"timeline"`
}

// GetTimeline fetches a bucketed breakdown of every counter for a single
// item. A zero granularity means per-day buckets.
func (c *Client) GetTimeline(ctx context.Context, itemId int64, item ItemType, granularity Granularity, institution bool) (Timeline, error) {
	ctx, span := tracer.Start(ctx, "client:GetTimeline")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("item_id", itemId),
		attribute.String("item_type", string(item)),
		attribute.String("granularity", string(granularity)),
	)

	if !item.Valid() {
		span.RecordError(InvalidItemType)
		span.SetStatus(codes.Error, "invalid item type")
		return nil, InvalidItemType
	}

	granularity = granularity.orDefault()

	timeline := make(Timeline, len(Counters))
	for _, counter := range Counters {
		requestPath, err := c.statsPath(
			institution,
			"timeline", string(granularity), string(counter), string(item),
			strconv.FormatInt(itemId, 10),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to build request path")
			return nil, err
		}

		res, err := issueRequest[timelineResponse](ctx, c.stats, requestPath, nil)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch timeline")
			return nil, err
		}

		points := make([]TimelinePoint, 0, len(res.Timeline))
		for date, value := range res.Timeline {
			points = append(points, TimelinePoint{Date: date, Value: value})
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].Date < points[j].Date
		})
		timeline[counter] = points
	}

	return timeline, nil
}
