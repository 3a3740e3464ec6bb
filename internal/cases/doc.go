// Package cases loads TOML case suites and checks every solver against the
// expected answers they declare.
//
// A suite looks like:
//
//	[options]
//	workers = 4
//	filled_threshold = 1
//
//	[[histogram]]
//	name = "leetcode-84"
//	heights = [2, 1, 5, 6, 2, 3]
//	expect = 10
//
//	[[maximal]]
//	name = "leetcode-85"
//	rows = ["10100", "10111", "11111", "10010"]
//	expect = 6
//
//	[[zerofill]]
//	name = "leetcode-2348"
//	nums = [1, 3, 0, 0, 2, 0, 0, 4]
//	expect = 6
//
// A maximal case gives its grid either as '0'/'1' strings (rows) or as
// integers compared against filled_threshold (values), never both.
package cases
