package views

// Section is a static topic area shown on the overview pages.
type Section struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Path        string   `json:"path,omitempty"`
}

var scienceSections = []Section{
	{
		Title:       "Physics",
		Description: "Explore the fundamental laws of nature, from quantum mechanics to classical physics, and understand how they shape our universe.",
		Topics:      []string{"Quantum Mechanics", "Classical Physics", "Relativity"},
	},
	{
		Title:       "Chemistry",
		Description: "Discover the building blocks of matter, chemical reactions, and the fascinating world of molecular interactions.",
		Topics:      []string{"Organic Chemistry", "Biochemistry", "Chemical Reactions"},
	},
	{
		Title:       "Biology",
		Description: "Explore the diversity of life, from microscopic organisms to complex ecosystems, and understand the mechanisms that drive biological processes.",
		Topics:      []string{"Genetics", "Ecology", "Evolution"},
	},
	{
		Title:       "Astronomy",
		Description: "Journey through the cosmos, exploring stars, galaxies, and the mysteries of space. Understand the origins and evolution of our universe.",
		Topics:      []string{"Cosmology", "Stellar Evolution", "Exoplanets"},
	},
	{
		Title:       "Material Science",
		Description: "Discover the properties and applications of different materials, from nanomaterials to advanced composites and smart materials.",
		Topics:      []string{"Nanotechnology", "Smart Materials", "Composites"},
	},
}

var engineeringSections = []Section{
	{
		Title:       "Robotics and Electronics",
		Description: "Explore the integration of robotics, electronics, and control systems. Learn about circuit design, sensors, actuators, and automation.",
		Topics:      []string{"Circuit Design", "Control Systems", "Sensors", "Automation"},
	},
	{
		Title:       "Material Science",
		Description: "Discover the properties and applications of different materials, from nanomaterials to advanced composites and smart materials.",
		Topics:      []string{"Nanotechnology", "Smart Materials", "Composites", "Material Properties"},
	},
	{
		Title:       "Mechatronics",
		Description: "Learn about the interdisciplinary field combining mechanical engineering, electronics, and computer science for advanced systems.",
		Topics:      []string{"System Integration", "Control Theory", "Embedded Systems", "Automation"},
	},
	{
		Title:       "Computer Science and Coding",
		Description: "Master programming languages, algorithms, and software development practices. From web development to artificial intelligence.",
		Topics:      []string{"Web Development", "AI/ML", "Data Structures", "Software Engineering"},
	},
	{
		Title:       "Mechanical Engineering",
		Description: "Study the principles of mechanics, thermodynamics, and materials science for designing and manufacturing mechanical systems.",
		Topics:      []string{"Thermodynamics", "Fluid Mechanics", "Machine Design", "Manufacturing"},
	},
}

// overviewSections link to a dedicated page only where one exists.
var overviewSections = []Section{
	{
		Title:       "Science",
		Description: "Explore the wonders of science, from physics and chemistry to biology and beyond.",
		Topics:      []string{"Physics", "Chemistry", "Biology", "Astronomy", "Material Science"},
		Path:        "/science",
	},
	{
		Title:       "Engineering & Coding",
		Description: "Discover the fascinating world of engineering, programming, and technological innovation.",
		Topics:      []string{"Robotics and Electronics", "Material Science", "Mechatronics", "Computer Science and Coding", "Mechanical Engineering"},
		Path:        "/engineering",
	},
	{
		Title:       "Fighting",
		Description: "Explore various martial arts and combat sports techniques and training methods.",
		Topics:      []string{"Boxing", "Jiu-Jitsu", "Muay Thai", "Wrestling"},
	},
	{
		Title:       "Fitness",
		Description: "Comprehensive guides on health, nutrition, and physical training programs.",
		Topics:      []string{"Strength Training", "Calisthenics", "Nutrition", "Recovery", "Mental Health"},
	},
}

const aboutText = "I'm a passionate writer and developer who loves sharing knowledge and experiences " +
	"through this blog. Feel free to reach out and connect with me!"

func copySections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		s.Topics = append([]string(nil), s.Topics...)
		out[i] = s
	}
	return out
}
