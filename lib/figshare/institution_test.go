package figshare

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"figstats/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func routeAuthorTotals(remote *mockRemote, authorId int64, views, downloads, shares int64) {
	remote.routes[fmt.Sprintf("total/views/author/%d", authorId)] = fmt.Sprintf(`{"totals": %d}`, views)
	remote.routes[fmt.Sprintf("total/downloads/author/%d", authorId)] = fmt.Sprintf(`{"totals": %d}`, downloads)
	remote.routes[fmt.Sprintf("total/shares/author/%d", authorId)] = fmt.Sprintf(`{"totals": %d}`, shares)
}

func TestGetInstitutionTotals(t *testing.T) {
	defer telemetry.SetupForTesting(t, "lib/figshare")()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	remote := newMockRemote(t)
	var accounts Accounts
	for i := int64(1); i <= 8; i++ {
		authorId := 200 + i
		accounts = append(accounts, Account{Id: i, AuthorId: authorId})
		routeAuthorTotals(remote, authorId, authorId*10, authorId*2, authorId)
	}
	client := newTestClient(t, ClientOptions{}, remote)

	totals, err := client.GetInstitutionTotals(ctx, InstitutionTotalsOptions{
		Accounts: accounts,
	})
	if err != nil {
		t.Fatal(err)
	}

	// only the first six accounts are aggregated by default
	require.Len(t, totals, DefaultInstitutionTotalsLimit)
	require.Len(t, remote.recorded(), DefaultInstitutionTotalsLimit*len(Counters))
	for i := int64(1); i <= 6; i++ {
		authorId := 200 + i
		want := Totals{
			CounterViews:     authorId * 10,
			CounterDownloads: authorId * 2,
			CounterShares:    authorId,
		}
		got, ok := totals[strconv.FormatInt(authorId, 10)]
		require.True(t, ok)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatal(diff)
		}
	}
	_, ok := totals["207"]
	require.False(t, ok)
}

func TestGetInstitutionTotalsLimit(t *testing.T) {
	defer telemetry.SetupForTesting(t, "lib/figshare")()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	remote := newMockRemote(t)
	var accounts Accounts
	for i := int64(1); i <= 8; i++ {
		authorId := 200 + i
		accounts = append(accounts, Account{Id: i, AuthorId: authorId})
		routeAuthorTotals(remote, authorId, 1, 1, 1)
	}
	client := newTestClient(t, ClientOptions{}, remote)

	{
		totals, err := client.GetInstitutionTotals(ctx, InstitutionTotalsOptions{
			Accounts: accounts,
			Limit:    2,
		})
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, totals, 2)
		require.Len(t, remote.recorded(), 2*len(Counters))
	}

	remote.reset()

	{
		totals, err := client.GetInstitutionTotals(ctx, InstitutionTotalsOptions{
			Accounts: accounts,
			Limit:    -1,
		})
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, totals, len(accounts))
		require.Len(t, remote.recorded(), len(accounts)*len(Counters))
	}
}

func TestGetInstitutionTotalsGroupByArticle(t *testing.T) {
	defer telemetry.SetupForTesting(t, "lib/figshare")()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	remote := newMockRemote(t)
	client := newTestClient(t, ClientOptions{}, remote)

	_, err := client.GetInstitutionTotals(ctx, InstitutionTotalsOptions{
		Accounts: Accounts{{Id: 1, AuthorId: 201}},
		GroupBy:  GroupByArticle,
	})
	require.ErrorIs(t, err, ArticleGroupingUnsupported)
	require.Empty(t, remote.recorded())
}

func TestGetInstitutionTotalsFetchesAccounts(t *testing.T) {
	defer telemetry.SetupForTesting(t, "lib/figshare")()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	remote := newMockRemote(t)
	remote.routes["institution/accounts"] = `[
		{"id": 1, "first_name": "Ada", "last_name": "Lovelace", "active": 1, "email": "ada@uni.edu"},
		{"id": 4, "first_name": "Grace", "last_name": "Hopper", "active": 1, "email": "grace@uni.edu"}
	]`
	remote.routes["institution/users/1"] = `{"id": 101}`
	remote.routes["institution/users/4"] = `{"id": 104}`
	routeAuthorTotals(remote, 101, 50, 20, 2)
	routeAuthorTotals(remote, 104, 75, 30, 3)
	client := newTestClient(t, ClientOptions{}, remote)

	totals, err := client.GetInstitutionTotals(ctx, InstitutionTotalsOptions{})
	if err != nil {
		t.Fatal(err)
	}

	want := InstitutionTotals{
		"101": {CounterViews: 50, CounterDownloads: 20, CounterShares: 2},
		"104": {CounterViews: 75, CounterDownloads: 30, CounterShares: 3},
	}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Fatal(diff)
	}

	require.Equal(t, []string{
		"institution/accounts",
		"institution/users/1",
		"institution/users/4",
		"total/views/author/101",
		"total/downloads/author/101",
		"total/shares/author/101",
		"total/views/author/104",
		"total/downloads/author/104",
		"total/shares/author/104",
	}, remote.recordedPaths())
}
