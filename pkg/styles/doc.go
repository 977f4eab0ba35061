// Package styles maps markup tag names to terminal styles.
//
// Style sheets are YAML documents with named adaptive colors and one
// style definition per tag:
//
//	colors:
//	  danger: {light: "#DC3545", dark: "#FF6B7D"}
//	styles:
//	  dangerStyle: {foreground: danger, bold: true}
//
// A sheet is bundled with the binary; users can merge their own on top.
package styles
