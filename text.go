package main

var (
	HeroTitle = `Full-Stack Developer`

	HeroSubtitle = `Building Complete Digital Solutions`

	HeroTagline = `Result-oriented Full-Stack Developer with ~1 year of experience crafting responsive, scalable, and
	user-friendly web applications using React.js, Next.js, Node.js, and modern UI frameworks.`

	AboutMe = []string{
		`I'm a passionate Full Stack Developer with a strong foundation in building responsive and scalable
		web applications. I enjoy creating seamless digital experiences that combine clean design with solid
		engineering.`,
		`Currently, I'm focusing on mastering modern frameworks like React.js and Next.js while exploring
		backend technologies to build complete, efficient solutions. I believe in writing clean, maintainable
		code and collaborating across teams to deliver high-quality, user-centric products.`,
	}

	Highlights = []string{
		"Top 10 ranker in WEBNATIC OF TECHUMEN'23",
		"2nd Rank in MLSA 'From Code to Cloud'",
		"Mentor in Coding Club (2022-2024)",
		"Placement Coordinator at T&P Cell, DYPCET",
	}

	Stats = []Stat{
		{Value: "1+", Label: "Years Experience"},
		{Value: "5+", Label: "Projects Completed"},
		{Value: "100%", Label: "Client Satisfaction"},
		{Value: "15+", Label: "Technologies"},
	}
)

// Stat is one headline number in the about section.
type Stat struct {
	Value string
	Label string
}
