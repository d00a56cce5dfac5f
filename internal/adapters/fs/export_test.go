// export_test.go exports private hooks for white-box testing.
package fs

// WithRemovers replaces the functions used to delete directories and files.
func (c *Cleaner) WithRemovers(removeAll, remove func(string) error) *Cleaner {
	c.removeAll = removeAll
	c.remove = remove
	return c
}
