package apify

import "time"

const (
	// BaseURL is the Apify REST API root.
	BaseURL = "https://api.apify.com/v2"

	// ProfileScraperActor lists a profile's recent posts.
	ProfileScraperActor = "apify~instagram-profile-scraper"
	// PostScraperActor fetches metadata for direct post URLs.
	PostScraperActor = "apify~instagram-post-scraper"

	// ProfileResultsLimit caps how many recent posts the profile scraper returns.
	ProfileResultsLimit = 50

	// ActorRunTimeout bounds a synchronous actor run. Scraper runs are slow.
	ActorRunTimeout = 120 * time.Second
	// RetryWait is the wait between actor run retries.
	RetryWait = 2 * time.Second
)
