package models

// LicenseInfo mirrors the license object attached to a repository. All fields
// are optional so an unlicensed repository serializes as an empty object.
type LicenseInfo struct {
	Key    string `json:"key,omitempty"`
	Name   string `json:"name,omitempty"`
	SPDXID string `json:"spdx_id,omitempty"`
	URL    string `json:"url,omitempty"`
}

// RepositorySummary is the per-repository view returned to the dashboard.
// Keys follow the original payload shape expected by the front end.
type RepositorySummary struct {
	Description    *string     `json:"description"`
	Stars          int         `json:"stars"`
	Forks          int         `json:"forks"`
	Issues         int         `json:"issues"`
	Watchers       int         `json:"watchers"`
	PrimaryLang    *string     `json:"primary_lang"`
	HasIssues      bool        `json:"has_issues"`
	HasProjects    bool        `json:"has_projects"`
	HasWiki        bool        `json:"has_wiki"`
	HasPages       bool        `json:"has_pages"`
	HasDownloads   bool        `json:"has_downloads"`
	HasDiscussions bool        `json:"has_discussions"`
	License        LicenseInfo `json:"license"`
	Topics         []string    `json:"topics"`
}
