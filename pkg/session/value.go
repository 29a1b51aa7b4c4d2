package session

import "github.com/gopcua/opcua/ua"

// ValueOf returns the decoded value carried by dv, or nil when dv or its
// variant is absent.
func ValueOf(dv *ua.DataValue) any {
	if dv == nil || dv.Value == nil {
		return nil
	}
	return dv.Value.Value()
}
