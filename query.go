package vdds

import "github.com/nodebus/vdds/internal/fabric"

// PubInfo, SubInfo, TopicInfo and DomainInfo are point-in-time snapshots
// returned by Query calls. Preallocate them with InitDomainInfo when
// polling repeatedly to avoid hot-path allocation.
type (
	PubInfo    = fabric.PubInfo
	SubInfo    = fabric.SubInfo
	TopicInfo  = fabric.TopicInfo
	DomainInfo = fabric.DomainInfo
)

// Filter narrows Dump/Query/Kick/Shutdown to topics matching TopicName
// and/or DataType. The string "any" on either field matches everything; any
// other value, including the empty string, must match exactly.
type Filter = fabric.Filter

// InitDomainInfo preallocates di's slices for ntopics topics, each
// expected to carry up to nsubs subscribers and npubs publishers.
func InitDomainInfo(di *DomainInfo, ntopics, nsubs, npubs int) {
	fabric.InitDomainInfo(di, ntopics, nsubs, npubs)
}

// InitTopicInfo preallocates ti's slices for nsubs subscribers and npubs
// publishers.
func InitTopicInfo(ti *TopicInfo, nsubs, npubs int) {
	fabric.InitTopicInfo(ti, nsubs, npubs)
}

// ClearDomainInfo resets di for reuse without releasing its backing array.
func ClearDomainInfo(di *DomainInfo) { fabric.ClearDomainInfo(di) }

// ClearTopicInfo resets ti for reuse without releasing its backing array.
func ClearTopicInfo(ti *TopicInfo) { fabric.ClearTopicInfo(ti) }
