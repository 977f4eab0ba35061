/*
Package output writes parsed templates in one of several formats.

The pipeline for a template string is:
 1. Go template expansion of {{...}} actions, when data is supplied
 2. markup.Parse into a node tree
 3. format specific rendering

Formats:
  - term: tags become lipgloss styles from the active style sheet
  - text: tags are removed, text is kept verbatim
  - json: the node tree, leaves as strings and elements as {tag, children}
  - html: tags become <span class="tag-NAME">, sanitised with bluemonday
  - tree: an indented tree view of the nodes, for debugging markup

The auto format picks term or text from the terminal, honoring NO_COLOR.
*/
package output
