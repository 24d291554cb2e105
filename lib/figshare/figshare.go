// Package figshare implements a client for the figshare statistics and
// account web APIs. Statistics queries cover views, downloads and shares
// of articles, authors, collections, groups and projects, account queries
// cover the accounts registered under an institution.
package figshare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"time"

	"figstats/lib/restyutil"
	"figstats/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultStatsBaseUrl   = "https://stats.figshare.com"
	DefaultAccountBaseUrl = "https://api.figshare.com/v2/account"
)

// Administrative and test accounts show up in institution listings like
// any other account. These defaults identify the University of Arizona
// ones.
const (
	DefaultAdminEmail       = "data-management@email.arizona.edu"
	DefaultTestEmailPattern = "-test@email.arizona.edu"
)

var InvalidItemType = fmt.Errorf("Incorrect item type. It must be one of: article, author, collection, group, project.")
var NoInstitute = fmt.Errorf("No institute is configured on the client.")
var ArticleGroupingUnsupported = fmt.Errorf("Institution totals can only be grouped by author.")

// StatusError is returned when the remote responds with a status outside
// the 2xx range.
type StatusError struct {
	Method     string
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Url, e.StatusCode)
}

type ClientOptions struct {
	// StatsBaseUrl and AccountBaseUrl fall back to the public figshare
	// endpoints when left empty.
	StatsBaseUrl   string `json:"stats_base_url"`
	AccountBaseUrl string `json:"account_base_url"`
	// Institute scopes statistics queries to an institution. The account
	// endpoints do not use it, they derive the institution from ApiToken.
	Institute string `json:"institute"`
	// BasicToken authorizes statistics queries, ApiToken authorizes
	// account queries. Anonymous queries work against the public
	// statistics endpoint.
	BasicToken string `json:"basic_token"`
	ApiToken   string `json:"api_token"`
	// AdminEmail and TestEmailPattern identify administrative and test
	// accounts in institution listings.
	AdminEmail       string `json:"admin_email"`
	TestEmailPattern string `json:"test_email_pattern"`
}

type Client struct {
	institute        string
	adminEmail       string
	testEmailPattern string
	stats            *resty.Client
	account          *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	statsBase := opts.StatsBaseUrl
	if statsBase == "" {
		statsBase = DefaultStatsBaseUrl
	}
	accountBase := opts.AccountBaseUrl
	if accountBase == "" {
		accountBase = DefaultAccountBaseUrl
	}
	if _, err := url.Parse(statsBase); err != nil {
		return nil, err
	}
	if _, err := url.Parse(accountBase); err != nil {
		return nil, err
	}

	adminEmail := opts.AdminEmail
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	testEmailPattern := opts.TestEmailPattern
	if testEmailPattern == "" {
		testEmailPattern = DefaultTestEmailPattern
	}

	stats := resty.New()
	stats.SetBaseURL(statsBase)
	stats.SetHeader("Content-Type", "application/json")
	stats.SetTimeout(time.Second * 30)
	if opts.BasicToken != "" {
		stats.SetHeader("Authorization", "Basic "+opts.BasicToken)
	}
	telemetry.InstrumentResty(stats, "figshare/stats/http")
	restyutil.InstrumentClient(stats, restyInstrumentOutput)

	account := resty.New()
	account.SetBaseURL(accountBase)
	account.SetHeader("Content-Type", "application/json")
	account.SetTimeout(time.Second * 30)
	if opts.ApiToken != "" {
		account.SetHeader("Authorization", "token "+opts.ApiToken)
	}
	telemetry.InstrumentResty(account, "figshare/account/http")
	restyutil.InstrumentClient(account, restyInstrumentOutput)

	return &Client{
		institute:        opts.Institute,
		adminEmail:       adminEmail,
		testEmailPattern: testEmailPattern,
		stats:            stats,
		account:          account,
	}, nil
}

// statsPath builds a path under the statistics endpoint, prefixed with the
// institute segment when the query is scoped to an institution.
func (c *Client) statsPath(institution bool, segments ...string) (string, error) {
	if !institution {
		return path.Join(segments...), nil
	}
	if c.institute == "" {
		return "", NoInstitute
	}
	return path.Join(append([]string{c.institute}, segments...)...), nil
}

// issueRequest performs a GET against the given client and decodes the
// json response body. Responses outside the 2xx range produce a
// *StatusError.
func issueRequest[T any](ctx context.Context, client *resty.Client, requestPath string, query map[string]string) (T, error) {
	var out T

	req := client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	res, err := req.Get(requestPath)
	if err != nil {
		return out, err
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return out, &StatusError{
			Method:     res.Request.Method,
			Url:        res.Request.URL,
			StatusCode: res.StatusCode(),
		}
	}

	err = json.Unmarshal(res.Body(), &out)
	if err != nil {
		return out, err
	}
	return out, nil
}
