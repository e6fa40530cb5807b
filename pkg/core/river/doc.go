// Package river implements a constraint-driven flow layout.
//
// # Overview
//
// Components are added to a container in order, each with an optional
// constraint string. They flow left to right like words in a paragraph and
// only wrap where a constraint asks for it:
//
//	p := river.NewTitledPanel("Account")
//	p.Add(nameLabel, "")
//	p.Add(nameField, "tab hfill")
//	p.Add(mailLabel, "br")
//	p.Add(mailField, "tab hfill")
//	p.Add(okButton, "p center")
//
// # Constraints
//
//   - br: line break
//   - p: paragraph break (a line break plus two extra vertical gaps)
//   - tab: jump to the row's next tab stop; stop N is shared by every row
//   - hfill: absorb the row's remaining width (last one in a row wins)
//   - vfill: absorb the container's remaining height (last one overall wins)
//   - left, center, right: horizontal alignment of this and later rows
//   - vtop, vcenter: vertical alignment within rows, also sticky
//
// Unknown tokens are ignored. Alignment tokens take effect for the row that
// contains them, including components placed before them in that row.
//
// # Passes
//
// Every pass first builds a [Ruler] of tab stops. [Layout.PreferredSize] and
// [Layout.MinimumSize] then simulate the rows without moving anything, and
// [Layout.PerformLayout] assigns every component its preferred size and a
// position. Nothing is cached between passes, so running a pass twice on an
// unchanged container gives identical geometry.
//
// Geometry is integer pixels. A container smaller than its content simply
// yields negative slack; fill components shrink accordingly.
package river
