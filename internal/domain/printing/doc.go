// Package printing contains the label-printing domain model: configured
// print providers and their parameters, the local printer catalog, label
// templates bound to printable tables, and the pluggable backend and hook
// contracts that connectors and extension modules implement.
package printing
