package constants

import "time"

var RedditAPI = struct {
	BaseURL       string
	OldBaseURL    string
	SubmittedPath string
	CommentsPath  string
	UserAgent     string
	PageLimit     int
	RequestDelay  time.Duration
}{
	BaseURL:       "https://www.reddit.com",
	OldBaseURL:    "https://old.reddit.com",
	SubmittedPath: "/user/%s/submitted",
	CommentsPath:  "/user/%s/comments",
	UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
	PageLimit:     100,                    // Reddit listing maximum per page
	RequestDelay:  350 * time.Millisecond, // fixed pause between listing requests
}

var RetryConfig = struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration
}{
	MaxAttempts: 3,
	BaseDelay:   2 * time.Second,
	MaxJitter:   500 * time.Millisecond,
}

var ContentLimits = struct {
	MaxItemRunes    int
	MaxExcerptRunes int
}{
	MaxItemRunes:    500, // per-item text cap inside the prompt block
	MaxExcerptRunes: 200, // cited source excerpt in the rendered report
}

var ReportLayout = struct {
	FilenamePrefix  string
	FilenameTime    string
	GeneratedAtTime string
	AnalysisDate    string
}{
	FilenamePrefix:  "persona",
	FilenameTime:    "20060102_150405",
	GeneratedAtTime: "2006-01-02 15:04:05",
	AnalysisDate:    "2006-01-02",
}
