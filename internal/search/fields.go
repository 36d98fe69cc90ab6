package search

import "ruyatech/internal/models"

// AdFields are the searchable columns of the ads table: title, status label,
// and where the ad points.
func AdFields(a models.Ad) []string {
	return []string{a.Title, string(a.Status), a.Location, a.URL}
}

// PostFields are the searchable columns of the posts table.
func PostFields(p models.Post) []string {
	return []string{p.Title, p.AuthorName, string(p.Status)}
}

// MemberFields are the searchable columns of the members table and the
// public grid.
func MemberFields(m models.Member) []string {
	return []string{m.Name, string(m.Status), m.City, m.Country}
}
