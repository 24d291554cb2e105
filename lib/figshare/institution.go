package figshare

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// InstitutionTotals maps author ids, formatted as decimal strings, to
// their all-time totals.
type InstitutionTotals map[string]Totals

// DefaultInstitutionTotalsLimit caps how many accounts
// GetInstitutionTotals aggregates when no limit is given.
const DefaultInstitutionTotalsLimit = 6

type InstitutionTotalsOptions struct {
	// Accounts to aggregate. When nil, the institution account listing
	// is fetched unfiltered with author ids resolved.
	Accounts Accounts
	// GroupBy defaults to grouping by author.
	GroupBy GroupBy
	// Limit caps how many accounts are aggregated. Zero means
	// DefaultInstitutionTotalsLimit, a negative limit means no cap.
	Limit int
}

// GetInstitutionTotals aggregates per-author totals across the
// institution's accounts. Each aggregated account costs one totals query
// per counter.
func (c *Client) GetInstitutionTotals(ctx context.Context, opts InstitutionTotalsOptions) (InstitutionTotals, error) {
	ctx, span := tracer.Start(ctx, "client:GetInstitutionTotals")
	defer span.End()

	groupBy := opts.GroupBy
	if groupBy == "" {
		groupBy = GroupByAuthor
	}
	if groupBy == GroupByArticle {
		span.RecordError(ArticleGroupingUnsupported)
		span.SetStatus(codes.Error, "article grouping unsupported")
		return nil, ArticleGroupingUnsupported
	}
	if groupBy != GroupByAuthor {
		err := fmt.Errorf("unknown group by: %q", groupBy)
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown group by")
		return nil, err
	}

	accounts := opts.Accounts
	if accounts == nil {
		var err error
		accounts, err = c.ListInstitutionAccounts(ctx, false)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to list accounts")
			return nil, err
		}
	}

	limit := opts.Limit
	if limit == 0 {
		limit = DefaultInstitutionTotalsLimit
	}
	if limit < 0 || limit > len(accounts) {
		limit = len(accounts)
	}
	span.SetAttributes(attribute.Int("limit", limit))

	totals := make(InstitutionTotals, limit)
	for _, account := range accounts[:limit] {
		userTotals, err := c.GetUserTotals(ctx, account.AuthorId)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch user totals")
			return nil, err
		}
		totals[strconv.FormatInt(account.AuthorId, 10)] = userTotals
	}

	return totals, nil
}
