package quote

import (
	genai "github.com/google/generative-ai-go/genai"
)

// quoteSchema constrains the model's quote reply to the BookingQuote shape.
var quoteSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
		"quote": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"packageName":      {Type: genai.TypeString},
				"guestCount":       {Type: genai.TypeInteger},
				"baseCost":         {Type: genai.TypeNumber},
				"weekendSurcharge": {Type: genai.TypeNumber},
				"totalEstimate":    {Type: genai.TypeNumber},
				"notes": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"packageName", "guestCount", "baseCost", "totalEstimate", "notes"},
		},
		"nextSteps": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"summary", "quote", "nextSteps"},
}

// inspirationSchema constrains the model's reply to the EventInspiration shape.
var inspirationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"themeName":   {Type: genai.TypeString, Description: "A catchy, creative name for the event theme."},
		"planningTip": {Type: genai.TypeString, Description: "A concise planning tip for this type of event."},
		"colorPalette": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "An array of 4 hex color codes that match the vibe.",
		},
		"decorIdeas": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "An array of 3-4 brief, inspiring decor ideas.",
		},
		"musicSuggestions": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "An array of 2-3 music genres or artist suggestions.",
		},
		"signatureCocktail": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":        {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
			},
			Required: []string{"name", "description"},
		},
	},
	Required: []string{"themeName", "planningTip", "colorPalette", "decorIdeas", "musicSuggestions", "signatureCocktail"},
}
