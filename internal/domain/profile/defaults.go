package profile

import "fmt"

const (
	DefaultProjectImage     = "https://picsum.photos/400/300"
	DefaultSkillLevel       = 50
	DefaultOpenRouterModel  = "google/gemini-pro"
	DefaultCustomModel      = "gpt-3.5-turbo"
	placeholderName         = "Your Name"
	placeholderTitle        = "Your Title"
	placeholderProfessional = "professional"
)

func DefaultSettings() Settings {
	return Settings{
		Layout:             LayoutScroll,
		Theme:              ThemeDark,
		PrimaryColor:       "#3b82f6",
		SecondaryColor:     "#8b5cf6",
		FontFamily:         "Roboto",
		BorderRadius:       8,
		BoxShadowStrength:  ShadowMD,
		TransitionDuration: 300,
		ViewMode:           ViewEnhanced,
		Sections:           AllSections(true),
		Animations: AnimationSettings{
			ScrollAnimation: ScrollFadeIn,
			HoverEffect:     HoverLift,
		},
		AI: AISettings{
			Provider:        ProviderGemini,
			OpenRouterModel: DefaultOpenRouterModel,
		},
	}
}

// Default returns the demo document shown to first-time visitors.
func Default() *Document {
	return &Document{
		SchemaVersion: CurrentSchemaVersion,
		PersonalInfo: PersonalInfo{
			Name:      "Alex Doe",
			Title:     "Full-Stack Web Developer",
			Avatar:    "https://i.pravatar.cc/300?u=a042581f4e29026704d",
			HeroImage: "https://picsum.photos/seed/picsum/2000/1333",
			Bio:       "I'm a passionate full-stack developer with experience in building modern web applications with React, Node.js, and TypeScript. I love solving complex problems and learning new technologies.",
			Contact: Contact{
				Email:     "alex.doe@example.com",
				LinkedIn:  "https://www.linkedin.com/",
				GitHub:    "https://github.com/",
				Portfolio: "https://example.com",
			},
		},
		Experience: []Experience{
			{
				ID:          NewID(),
				Title:       "Senior Software Engineer",
				Company:     "Tech Solutions Inc.",
				StartDate:   "Jan 2020",
				EndDate:     "Present",
				Description: "<ul><li>Led the development of a new microservices-based architecture, improving system scalability by 50%.</li><li>Mentored junior developers and conducted code reviews to ensure code quality and consistency.</li></ul>",
				SkillsUsed:  []string{"React", "Node.js", "TypeScript", "AWS"},
			},
			{
				ID:          NewID(),
				Title:       "Software Engineer",
				Company:     "Web Innovators",
				StartDate:   "Jun 2017",
				EndDate:     "Dec 2019",
				Description: "<p>Developed and maintained client-facing web applications using Angular and .NET Core. Collaborated with cross-functional teams to deliver high-quality software solutions.</p>",
				SkillsUsed:  []string{"Angular", ".NET Core", "SQL Server"},
			},
		},
		Education: []Education{
			{
				ID:           NewID(),
				School:       "University of Technology",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Computer Science",
				StartDate:    "2013",
				EndDate:      "2017",
				Description:  "<p>Graduated with honors. Active member of the coding club and participated in several hackathons.</p>",
			},
		},
		Projects: []Project{
			{
				ID:          NewID(),
				Name:        "E-commerce Platform",
				Description: "<p>A full-featured e-commerce platform with a React-based frontend and a Node.js backend. Implemented features like product search, shopping cart, and Stripe integration for payments.</p>",
				Image:       "https://picsum.photos/seed/project1/800/600",
				RepoLink:    "https://github.com/",
				DemoLink:    "https://example.com",
				Tags:        []string{"React", "Node.js", "Stripe"},
			},
			{
				ID:          NewID(),
				Name:        "Project Management Tool",
				Description: "<p>A Kanban-style project management tool built with Vue.js and Firebase. Allows users to create boards, lists, and cards to manage their tasks and workflows.</p>",
				Image:       "https://picsum.photos/seed/project2/800/600",
				RepoLink:    "https://github.com/",
				DemoLink:    "https://example.com",
				Tags:        []string{"Vue.js", "Firebase", "Kanban"},
			},
		},
		Skills: Skills{
			Frontend: []Skill{
				{ID: NewID(), Name: "React", Level: 95, Icon: "react"},
				{ID: NewID(), Name: "TypeScript", Level: 90, Icon: "typescript"},
				{ID: NewID(), Name: "Vue.js", Level: 80, Icon: "vue"},
			},
			Backend: []Skill{
				{ID: NewID(), Name: "Node.js", Level: 90, Icon: "nodejs"},
				{ID: NewID(), Name: "Python", Level: 75, Icon: "python"},
			},
			Tools: []Skill{
				{ID: NewID(), Name: "Docker", Level: 85, Icon: "docker"},
				{ID: NewID(), Name: "AWS", Level: 70, Icon: "aws"},
			},
		},
		Certifications: []Certification{
			{
				ID:                  NewID(),
				Name:                "AWS Certified Cloud Practitioner",
				IssuingOrganization: "Amazon Web Services",
				Date:                "2022",
				CredentialURL:       "https://www.credly.com/your-badge",
				Image:               "https://picsum.photos/seed/cert1/400/300",
			},
		},
		Awards:   []Award{},
		Hobbies:  []Hobby{},
		Settings: DefaultSettings(),
	}
}

// NewForOwner returns the empty document created when a visitor completes
// onboarding. Settings are carried over from the demo document.
func NewForOwner(name, title string) *Document {
	doc := Default()
	if name == "" {
		name = placeholderName
	}
	role := title
	if role == "" {
		title = placeholderTitle
		role = placeholderProfessional
	}
	doc.PersonalInfo = PersonalInfo{
		Name:  name,
		Title: title,
		Bio:   fmt.Sprintf("Welcome to my new profile! I'm a %s looking for new opportunities.", role),
	}
	doc.Experience = []Experience{}
	doc.Education = []Education{}
	doc.Projects = []Project{}
	doc.Skills = Skills{Frontend: []Skill{}, Backend: []Skill{}, Tools: []Skill{}}
	doc.Certifications = []Certification{}
	doc.Awards = []Award{}
	doc.Hobbies = []Hobby{}
	return doc
}

func NewExperience() Experience {
	return Experience{ID: NewID(), SkillsUsed: []string{}}
}

func NewEducation() Education {
	return Education{ID: NewID()}
}

func NewProject() Project {
	return Project{ID: NewID(), Image: DefaultProjectImage, Tags: []string{}}
}

func NewCertification() Certification {
	return Certification{ID: NewID()}
}

func NewAward() Award {
	return Award{ID: NewID()}
}

func NewHobby() Hobby {
	return Hobby{ID: NewID()}
}

func NewSkill() Skill {
	return Skill{ID: NewID(), Level: DefaultSkillLevel}
}
