package ai

import "github.com/google/generative-ai-go/genai"

func str() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }

func strList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: str()}
}

func object(required []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

func arrayOf(item *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: item}
}

// generatedProfileSchema mirrors generated.schema.json in pkg/schema.
func generatedProfileSchema() *genai.Schema {
	skill := object([]string{"name", "level"}, map[string]*genai.Schema{
		"name":  str(),
		"level": {Type: genai.TypeInteger, Description: "Proficiency from 0 to 100"},
	})

	return object([]string{"personalInfo"}, map[string]*genai.Schema{
		"personalInfo": object([]string{"name", "title", "bio"}, map[string]*genai.Schema{
			"name":  str(),
			"title": str(),
			"bio":   str(),
			"contact": object(nil, map[string]*genai.Schema{
				"email":     str(),
				"phone":     str(),
				"linkedin":  str(),
				"github":    str(),
				"portfolio": str(),
			}),
		}),
		"experience": arrayOf(object([]string{"title", "company"}, map[string]*genai.Schema{
			"title":       str(),
			"company":     str(),
			"startDate":   str(),
			"endDate":     str(),
			"description": str(),
			"skillsUsed":  strList(),
		})),
		"education": arrayOf(object([]string{"school", "degree"}, map[string]*genai.Schema{
			"school":       str(),
			"degree":       str(),
			"fieldOfStudy": str(),
			"startDate":    str(),
			"endDate":      str(),
			"description":  str(),
		})),
		"projects": arrayOf(object([]string{"name"}, map[string]*genai.Schema{
			"name":        str(),
			"description": str(),
			"repoLink":    str(),
			"demoLink":    str(),
			"tags":        strList(),
		})),
		"skills": object(nil, map[string]*genai.Schema{
			"frontend": arrayOf(skill),
			"backend":  arrayOf(skill),
			"tools":    arrayOf(skill),
		}),
		"certifications": arrayOf(object([]string{"name"}, map[string]*genai.Schema{
			"name":                str(),
			"issuingOrganization": str(),
			"date":                str(),
			"credentialUrl":       str(),
		})),
	})
}
