package errstore

// ClientExport is handed to the front-end error library. Field names and
// nesting are a stable wire contract:
//
//	{
//	  "errorMetaMap": {"1001": {"code": 1001, "name": "USER_NOT_FOUND", ...}},
//	  "errorCodes":   {"USER_NOT_FOUND": 1001}
//	}
type ClientExport struct {
	ErrorMetaMap map[string]ClientDescriptor `json:"errorMetaMap"`
	ErrorCodes   map[string]Code             `json:"errorCodes"`
}

// ExportForClient returns every descriptor keyed by code text, and the
// inverse mapping from name to code.
func (s *Store) ExportForClient() ClientExport {
	out := ClientExport{
		ErrorMetaMap: make(map[string]ClientDescriptor, len(s.codemap)),
		ErrorCodes:   make(map[string]Code, len(s.codemap)),
	}
	for key, d := range s.codemap {
		out.ErrorMetaMap[key] = d.Serialize()
		out.ErrorCodes[d.Name] = d.Code
	}
	return out
}
