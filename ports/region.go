package ports

// RegionLookup backfills a row's region from its nation when the source
// file leaves the region column blank or unclassified. The caller picks
// and loads the reference source; the parser core never touches files.
type RegionLookup interface {
	Region(nation string) (string, bool)
}
