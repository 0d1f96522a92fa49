package vdds

import "github.com/nodebus/vdds/internal/fabric"

// Domain is the top-level registry of topics. Topic names are unique
// within a domain and, once created, live for the domain's lifetime.
// Domain.CreateTopic, Dump, Query, Kick and Shutdown are its public API.
type Domain = fabric.Domain

// NewDomain creates an empty domain. name is conventionally all-caps; it is
// used only for log attribution.
func NewDomain(name string) *Domain {
	return fabric.NewDomain(name)
}
