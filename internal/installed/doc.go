// Package installed recovers "what did this tool install" from filenames
// alone. The naming prefix is the only manifest: no state file is written,
// so the scan is a pure inverse of the naming policy. With an empty prefix
// nothing is detectable and both scan and clean degrade to no-ops.
package installed
