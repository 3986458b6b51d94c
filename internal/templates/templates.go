// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package templates holds the registry of named output templates. Each
// template pairs a prompt body with a delimiter-separated output schema the
// assistant's answer must follow.
package templates

import "strings"

// Delimiter separates fields in a template's output schema and in every
// final answer produced by the pipeline.
const Delimiter = "<||>"

// CustomName is the registry entry unknown template names fall back to.
const CustomName = "Custom"

// Template is a named prompt body plus output schema. The body contains the
// placeholders {query} and {search_results}; only {query} is filled by the
// prompt builder, {search_results} is left for the agent's tooling.
type Template struct {
	// Name identifies the template in the registry.
	Name string `json:"name" yaml:"name"`

	// Body is the prompt text with {query} and {search_results} placeholders.
	Body string `json:"body" yaml:"body"`

	// Format is the Delimiter-joined list of output field names.
	Format string `json:"format" yaml:"format"`

	// Example is a sample answer matching Format.
	Example string `json:"example" yaml:"example"`

	// Description is a one-line hint shown when listing templates.
	Description string `json:"description" yaml:"description"`
}

// SchemaFields returns the ordered output field names. The result always has
// at least one element: splitting a delimiter-free format yields the format
// itself as the single field.
func (t Template) SchemaFields() []string {
	return SplitFormat(t.Format)
}

// SplitFormat splits a format string into its ordered field names.
func SplitFormat(format string) []string {
	return strings.Split(format, Delimiter)
}

// Registry maps template names to templates, preserving the order entries
// were registered in.
type Registry struct {
	byName map[string]Template
	order  []string
}

// NewRegistry returns a registry pre-populated with the built-in templates:
// Custom, Product Search, Location Info, and Company Details.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Template)}
	for _, t := range builtins {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a template by name.
func (r *Registry) Register(t Template) {
	if _, ok := r.byName[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}
	r.byName[t.Name] = t
}

// Lookup returns the template with the given name. Unknown names silently
// resolve to the Custom template.
func (r *Registry) Lookup(name string) Template {
	if t, ok := r.byName[name]; ok {
		return t
	}
	return r.byName[CustomName]
}

// Names returns the template names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns the templates in registration order.
func (r *Registry) All() []Template {
	out := make([]Template, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

var builtins = []Template{
	{
		Name: CustomName,
		Body: `You are an information analyst. Analyze this query: {query}

Your task:
1. Search for relevant information
2. Extract specific details matching the requested format
3. Format response precisely

Available information from search:
{search_results}

Rules:
- Focus on accuracy and relevance
- Include source URLs when available
- Follow the exact format requested`,
		Format:      "field1<||>field2<||>field3",
		Example:     "value1<||>value2<||>value3",
		Description: "For custom delimiter-separated formats",
	},
	{
		Name: "Product Search",
		Body: `You are a product analyst. Analyze this product: {query}

TASK:
1. Extract product details from markdown content
2. Identify: full product name, category, price, and URL
3. Format response precisely

Available information from search:
{search_results}

INSTRUCTIONS:
- IMPORTANT: Only use prices that appear directly in the search results
- If no price is found, use "Price not found" instead of guessing
- Use official retailer URL when available
- Format response exactly as shown below
- No hallucination or guessing of information
- If information is not found, use "Not found"

OUTPUT FORMAT:
[Product Name]<||>[Category]<||>[Price]<||>[URL]`,
		Format:      "product_name<||>category<||>price<||>url",
		Example:     "DW6SS is a dishwasher<||>Appliances<||>$299.99<||>https://example.com",
		Description: "For searching product information",
	},
	{
		Name: "Location Info",
		Body: `You are a geographic analyst. Analyze this query: {query}

Your task:
1. Determine the type of location (country, state, city, etc.)
2. Search for accurate population and area data
3. Format response precisely

Available information from search:
{search_results}

Rules:
- For US locations, specify if it's a state or city
- Population should be the most recent available
- Area should include the unit (km² or sq mi)
- Be accurate with administrative divisions`,
		Format:      "location_name<||>location_type<||>Country<||>population<||>area",
		Example:     "Texas<||>US State<||>United States of America<||>30.5 million<||>695,662 km²",
		Description: "For geographic information. Location type can be: Country, US State, City, etc.",
	},
	{
		Name: "Company Details",
		Body: `You are a business analyst. Analyze this query: {query}

Your task:
1. Research company information
2. Find company website and details
3. Format response precisely

Available information from search:
{search_results}

Rules:
- Look for company website first
- Extract industry from company description or website
- Include headquarters if found
- If information is not available, use "Not found"
- NO HALLUCINATION - only use found information

OUTPUT FORMAT:
[Company Name]<||>[Industry]<||>[Revenue/Status]<||>[Location/Website]`,
		Format:      "company<||>industry<||>revenue<||>headquarters",
		Example:     "Apple<||>Technology<||>$365.8B<||>Cupertino, CA",
		Description: "For company information",
	},
}
