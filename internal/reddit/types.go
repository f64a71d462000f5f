package reddit

// Listing mirrors the envelope of Reddit's public listing endpoints. The
// "after" token is the opaque pagination cursor for the next page; an empty
// token means end of history.
type Listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Before   string  `json:"before"`
		Children []Child `json:"children"`
	} `json:"data"`
}

type Child struct {
	Kind string `json:"kind"` // "t3" for posts, "t1" for comments
	Data Item   `json:"data"`
}

// Item is one raw listing entry. Posts carry Title/Selftext, comments carry
// Body; the remaining fields are shared.
type Item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"` // fullname, e.g. "t3_abc123" or "t1_xyz789"
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Body       string  `json:"body"`
	Author     string  `json:"author"`
	Subreddit  string  `json:"subreddit"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
	Ups        int     `json:"ups"`
}
