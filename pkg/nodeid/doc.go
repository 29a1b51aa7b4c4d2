// Package nodeid resolves textual node identifiers into OPC UA node IDs.
//
// The full OPC UA notation is accepted:
//
//	ns=2;s=Tank.Level      string identifier in namespace 2
//	i=2258                 numeric identifier in namespace 0
//	ns=3;g=72962B91-...    GUID identifier
//	ns=1;b=M/RbKBsRVkePCePcx24oRA==   opaque identifier
//
// A bare identifier without any "=" is treated as a string identifier in the
// parser's default namespace, so "Tank.Level" with DefaultNamespace 2 is the
// same node as "ns=2;s=Tank.Level".
package nodeid
