package fabric

// PubInfo is a snapshot of one publisher handle, returned by Topic.Query.
type PubInfo struct {
	Name string
}

// SubInfo is a snapshot of one subscriber queue, returned by Topic.Query.
type SubInfo struct {
	Name      string
	PushCount uint32
	DropCount uint32
	QCapacity uint32
	QSize     uint32
}

// TopicInfo is a snapshot of one topic's membership and counters, returned
// by Topic.Query and nested under DomainInfo.Topics by Domain.Query.
type TopicInfo struct {
	Name      string
	DataType  string
	Subs      []SubInfo
	Pubs      []PubInfo
	PushCount uint64
}

// DomainInfo is a snapshot of an entire domain, returned by Domain.Query.
type DomainInfo struct {
	Name   string
	Topics []TopicInfo
}

// Filter narrows Domain.Query/Domain.Dump/Domain.Kick/Domain.Shutdown to
// topics matching TopicName and/or DataType. The literal "any" on either
// field matches anything; this is the sole wildcard sentinel, matching the
// original's filter{} default.
type Filter struct {
	TopicName string
	DataType  string
}

// Match reports whether a topic with the given name and data type satisfies f.
func (f Filter) Match(name, dataType string) bool {
	if f.TopicName != "any" && f.TopicName != name {
		return false
	}
	if f.DataType != "any" && f.DataType != dataType {
		return false
	}
	return true
}

// InitTopicInfo preallocates ti's slices, avoiding hot-path growth when a
// caller repeatedly reuses the same TopicInfo across polling queries.
func InitTopicInfo(ti *TopicInfo, nsubs, npubs int) {
	ti.Subs = make([]SubInfo, 0, nsubs)
	ti.Pubs = make([]PubInfo, 0, npubs)
}

// InitDomainInfo preallocates di's slices and every nested TopicInfo's
// Subs/Pubs, mirroring query::init(domain_info&, ...) in the original
// design. A caller that passes di to repeated Domain.Query calls and keeps
// topic/subscriber/publisher counts within ntopics/nsubs/npubs never grows
// an allocation past this call.
func InitDomainInfo(di *DomainInfo, ntopics, nsubs, npubs int) {
	di.Topics = make([]TopicInfo, ntopics)
	for i := range di.Topics {
		InitTopicInfo(&di.Topics[i], nsubs, npubs)
	}
	di.Topics = di.Topics[:0]
}

// ClearTopicInfo resets ti for reuse without releasing its backing arrays.
func ClearTopicInfo(ti *TopicInfo) {
	ti.Name = ""
	ti.DataType = ""
	ti.Subs = ti.Subs[:0]
	ti.Pubs = ti.Pubs[:0]
	ti.PushCount = 0
}

// ClearDomainInfo resets di for reuse without releasing its backing array.
func ClearDomainInfo(di *DomainInfo) {
	di.Name = ""
	di.Topics = di.Topics[:0]
}

// growTopicInfo extends s by one slot. When s still has spare capacity from
// a prior InitDomainInfo, the new slot is an existing, already-initialized
// TopicInfo (its Subs/Pubs keep whatever capacity InitTopicInfo gave them)
// rather than a freshly allocated zero value.
func growTopicInfo(s []TopicInfo) []TopicInfo {
	if len(s) < cap(s) {
		return s[:len(s)+1]
	}
	return append(s, TopicInfo{})
}
