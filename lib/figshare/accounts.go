package figshare

import (
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Account is one account registered under an institution. AuthorId is zero
// until filled in by ResolveAuthorIds.
type Account struct {
	Id        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Active    int    `json:"active"`
	Email     string `json:"email"`
	AuthorId  int64  `json:"author_id"`
}

type Accounts []Account

// The account endpoint serves at most 1000 accounts per page and only the
// first page is read. Larger institutions need paging, which the listing
// doesn't do yet.
const institutionAccountPageSize = 1000

// ListInstitutionAccounts fetches the accounts registered under the
// institution the client's api token belongs to. excludeAdminAndTest
// drops administrative and test accounts from the listing. Author ids are
// resolved on everything returned.
func (c *Client) ListInstitutionAccounts(ctx context.Context, excludeAdminAndTest bool) (Accounts, error) {
	ctx, span := tracer.Start(ctx, "client:ListInstitutionAccounts")
	defer span.End()

	accounts, err := issueRequest[Accounts](ctx, c.account, "institution/accounts", map[string]string{
		"page":      "1",
		"page_size": strconv.Itoa(institutionAccountPageSize),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch accounts")
		return nil, err
	}

	if excludeAdminAndTest {
		slog.InfoContext(ctx, "excluding administrative and test accounts")
		filtered := make(Accounts, 0, len(accounts))
		for _, account := range accounts {
			if account.Email == c.adminEmail {
				continue
			}
			if c.testEmailPattern != "" && strings.Contains(account.Email, c.testEmailPattern) {
				continue
			}
			filtered = append(filtered, account)
		}
		accounts = filtered
	}

	err = c.ResolveAuthorIds(ctx, accounts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve author ids")
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(accounts)))
	return accounts, nil
}

type institutionUserResponse struct {
	Id int64 `json:"id"`
}

// ResolveAuthorIds fills in the author id of every account in place, one
// request per account.
func (c *Client) ResolveAuthorIds(ctx context.Context, accounts Accounts) error {
	ctx, span := tracer.Start(ctx, "client:ResolveAuthorIds")
	defer span.End()

	for i := range accounts {
		user, err := issueRequest[institutionUserResponse](
			ctx, c.account,
			path.Join("institution", "users", strconv.FormatInt(accounts[i].Id, 10)),
			nil,
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch institution user")
			return err
		}
		accounts[i].AuthorId = user.Id
	}

	return nil
}
