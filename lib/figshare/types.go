package figshare

// ItemType identifies the kind of research output a statistics query is
// about.
type ItemType string

const (
	ItemArticle    ItemType = "article"
	ItemAuthor     ItemType = "author"
	ItemCollection ItemType = "collection"
	ItemGroup      ItemType = "group"
	ItemProject    ItemType = "project"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemArticle, ItemAuthor, ItemCollection, ItemGroup, ItemProject:
		return true
	}
	return false
}

// Counter identifies one of the usage counters tracked for every item.
type Counter string

const (
	CounterViews     Counter = "views"
	CounterDownloads Counter = "downloads"
	CounterShares    Counter = "shares"
)

// Counters lists every counter in the order they are queried.
var Counters = []Counter{CounterViews, CounterDownloads, CounterShares}

// Granularity selects the bucket size of timeline queries.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) orDefault() Granularity {
	if g == "" {
		return GranularityDay
	}
	return g
}

// GroupBy selects how institution wide totals are aggregated.
type GroupBy string

const (
	GroupByAuthor  GroupBy = "author"
	GroupByArticle GroupBy = "article"
)
