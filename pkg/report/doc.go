// Package report renders the third-party notices document.
//
// The document has a fixed shape: a header describing how it was generated,
// a table of contents linking to one section per dependency, and the
// sections themselves. Each section lists the declared license expression,
// repository and origin, followed by the verbatim text of every license file
// found for the package.
//
// Table of contents links use [Anchor], which mimics the heading anchors a
// common markdown renderer generates. The algorithm is heuristic and is kept
// exactly as is so existing links keep resolving.
package report
