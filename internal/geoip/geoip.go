// Package geoip answers country/region lookups for the identity resolver.
// It reads a MaxMind GeoIP2 database when one is available and otherwise
// accepts a small JSON file of CIDR->country records, which is what the demo
// deployments and the tests ship.
package geoip

import (
	"encoding/json"
	"net"
	"os"

	"github.com/oschwald/geoip2-golang"
)

// GeoIP resolves IP addresses to coarse location data. A nil *GeoIP is a
// valid receiver and reports empty results, so callers can treat the service
// as optional.
type GeoIP struct {
	db      *geoip2.Reader
	entries []cidrEntry
}

type cidrEntry struct {
	net     *net.IPNet
	country string
	region  string
}

// Init opens the database at path, preferring the MaxMind format and falling
// back to the JSON CIDR list. The returned error is the MaxMind open error
// when neither format works.
func Init(path string) (*GeoIP, error) {
	g := &GeoIP{}
	db, err := geoip2.Open(path)
	if err == nil {
		g.db = db
		return g, nil
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, err
	}
	var raw []struct {
		Net     string `json:"net"`
		Country string `json:"country"`
		Region  string `json:"region"`
	}
	if jsonErr := json.Unmarshal(data, &raw); jsonErr != nil {
		return nil, err
	}
	for _, e := range raw {
		if _, n, perr := net.ParseCIDR(e.Net); perr == nil {
			g.entries = append(g.entries, cidrEntry{net: n, country: e.Country, region: e.Region})
		}
	}
	return g, nil
}

// Country returns the ISO 3166-1 country code for ip, or "" when unknown.
func (g *GeoIP) Country(ip net.IP) string {
	if g == nil {
		return ""
	}
	if g.db != nil {
		if rec, err := g.db.Country(ip); err == nil {
			return rec.Country.IsoCode
		}
	}
	for _, e := range g.entries {
		if e.net.Contains(ip) {
			return e.country
		}
	}
	return ""
}

// Region returns the first subdivision code for ip, or "" when unknown.
func (g *GeoIP) Region(ip net.IP) string {
	if g == nil {
		return ""
	}
	if g.db != nil {
		if rec, err := g.db.City(ip); err == nil && len(rec.Subdivisions) > 0 {
			return rec.Subdivisions[0].IsoCode
		}
	}
	for _, e := range g.entries {
		if e.net.Contains(ip) {
			return e.region
		}
	}
	return ""
}

// Close releases the underlying MaxMind reader, if any.
func (g *GeoIP) Close() error {
	if g != nil && g.db != nil {
		return g.db.Close()
	}
	return nil
}
