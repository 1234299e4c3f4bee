package model

import "sort"

// Registry is the ordered collection of every extracted service record.
// It is owned by the driver of an extraction run; extractors only hand
// records to it and renderers only flip the Processed flag.
type Registry struct {
	records []*ServiceRecord
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds records in the order given.
func (r *Registry) Append(records ...*ServiceRecord) {
	r.records = append(r.records, records...)
}

// Records returns the records in extraction order.
func (r *Registry) Records() []*ServiceRecord {
	return r.records
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Pending returns the records for url and method that have not been rendered yet.
func (r *Registry) Pending(url string, method Method) []*ServiceRecord {
	var pending []*ServiceRecord
	for _, rec := range r.records {
		if rec.Method == method && rec.URL == url && !rec.Processed {
			pending = append(pending, rec)
		}
	}
	return pending
}

// MarkProcessed flags a record as rendered.
func (r *Registry) MarkProcessed(rec *ServiceRecord) {
	rec.Processed = true
}

// Reset clears every Processed flag so the registry can be rendered again.
func (r *Registry) Reset() {
	for _, rec := range r.records {
		rec.Processed = false
	}
}

// PublicURLsByGroup maps every group to the sorted, de-duplicated URLs of
// its public records. Groups without public records map to an empty slice.
func (r *Registry) PublicURLsByGroup() map[string][]string {
	seen := make(map[string]map[string]bool)
	for _, rec := range r.records {
		if seen[rec.Group] == nil {
			seen[rec.Group] = make(map[string]bool)
		}
		if rec.IsPublic() {
			seen[rec.Group][rec.URL] = true
		}
	}

	groups := make(map[string][]string, len(seen))
	for group, urls := range seen {
		list := make([]string, 0, len(urls))
		for url := range urls {
			list = append(list, url)
		}
		sort.Strings(list)
		groups[group] = list
	}
	return groups
}
