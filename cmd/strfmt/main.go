// Command strfmt renders and checks format-string templates.
//
// Usage:
//
//	# Render with positional arguments
//	strfmt render "Hello, {0}!" --arg World
//
//	# Render a template file against YAML or JSON data
//	strfmt render --file greeting.txt --data user.yaml
//
//	# Re-render whenever the template or data changes
//	strfmt render --file greeting.txt --data user.yaml --watch
//
//	# Report problems in templates
//	strfmt check --data user.yaml greeting.txt farewell.txt
//
//	# List available formatters, including configured presets
//	strfmt formatters --config strfmt.yaml
package main

func main() {
	Execute()
}
