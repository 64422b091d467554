package content

const demoURL = "https://demo.example.com"

const sourceURL = "https://github.com/example"

// Default returns the built-in portfolio content. Each call returns a fresh
// copy that callers may modify.
func Default() *Content {
	return &Content{
		Owner: Owner{
			Name:     "Jahanzeb Ahmed",
			Initials: "JA",
			Bio: "As a Data Scientist with over **5 years** of experience, I specialize in developing " +
				"machine learning solutions that drive business value. My expertise spans across " +
				"predictive analytics, natural language processing, and computer vision, with a " +
				"proven track record of implementing successful AI initiatives in various industries.",
			Resume:        "/resume.pdf",
			LinkedIn:      "https://linkedin.com/in/jahanzebahmed",
			CopyrightYear: 2024,
		},
		Heroes: Heroes{
			Work: Hero{
				Title:    "Data Science Portfolio",
				Subtitle: "Transforming complex data into actionable insights through innovative solutions and cutting-edge technology.",
			},
			About: Hero{Title: "About Me"},
			Notes: Hero{
				Title:    "My Notes",
				Subtitle: "Exploring data science concepts through detailed technical articles and tutorials.",
			},
			Neurons: Hero{
				Title:    "Discover my Neurons",
				Subtitle: "Exploring thoughts, ideas, and insights about data science and artificial intelligence.",
			},
			Contact: Hero{
				Title:    "Get in Touch",
				Subtitle: "Let's connect and discuss how we can work together.",
			},
		},
		Projects: []Project{
			{
				Title:       "AI-Powered Data Analysis",
				Description: "Advanced data analysis platform using machine learning algorithms for predictive analytics.",
				Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=800",
				Demo:        demoURL,
				Source:      sourceURL,
				Tags:        []string{"Python", "TensorFlow", "React", "AWS"},
			},
			{
				Title:       "Neural Network Visualizer",
				Description: "Interactive visualization tool for understanding neural network architectures and data flow.",
				Image:       "https://images.unsplash.com/photo-1527474305487-b87b222841cc?auto=format&fit=crop&q=80&w=800",
				Demo:        demoURL,
				Source:      sourceURL,
				Tags:        []string{"D3.js", "PyTorch", "TypeScript"},
			},
			{
				Title:       "Time Series Forecasting",
				Description: "Real-time forecasting system for financial markets using advanced statistical models.",
				Image:       "https://images.unsplash.com/photo-1642790106117-e829e14a795f?auto=format&fit=crop&q=80&w=800",
				Demo:        demoURL,
				Source:      sourceURL,
				Tags:        []string{"R", "Pandas", "Docker"},
			},
			{
				Title:       "NLP Document Analyzer",
				Description: "Natural language processing tool for automated document classification and sentiment analysis.",
				Image:       "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?auto=format&fit=crop&q=80&w=800",
				Demo:        demoURL,
				Source:      sourceURL,
				Tags:        []string{"BERT", "FastAPI", "MongoDB"},
			},
			{
				Title:       "Computer Vision Platform",
				Description: "Real-time object detection and tracking system using state-of-the-art computer vision algorithms.",
				Image:       "https://images.unsplash.com/photo-1535378917042-10a22c95931a?auto=format&fit=crop&q=80&w=800",
				Demo:        demoURL,
				Source:      sourceURL,
				Tags:        []string{"OpenCV", "YOLO", "Kubernetes"},
			},
		},
		Education: []Education{
			{
				Degree:      "Master of Science in Data Science",
				Institution: "Stanford University",
				Period:      "2018 - 2020",
			},
		},
		Experience: []Experience{
			{
				Role:    "Senior Data Scientist",
				Company: "Tech Innovation Labs",
				Period:  "2020 - Present",
				Highlights: []string{
					"Led a team of data scientists in developing predictive models",
					"Implemented ML pipelines that improved efficiency by 40%",
					"Collaborated with cross-functional teams to deliver AI solutions",
				},
			},
		},
		Certifications: []Certification{
			{
				Title:        "Data Science Professional Certificate",
				Organization: "IBM",
				Date:         "2023",
				Image:        "https://images.unsplash.com/photo-1509228468518-180dd4864904?auto=format&fit=crop&q=80&w=800",
				Verification: "https://www.credential.net/example1",
			},
			{
				Title:        "Machine Learning Specialization",
				Organization: "Stanford Online",
				Date:         "2023",
				Image:        "https://images.unsplash.com/photo-1555949963-aa79dcee981c?auto=format&fit=crop&q=80&w=800",
				Verification: "https://www.credential.net/example2",
			},
			{
				Title:        "Deep Learning Specialization",
				Organization: "DeepLearning.AI",
				Date:         "2022",
				Image:        "https://images.unsplash.com/photo-1527430253228-e93688616381?auto=format&fit=crop&q=80&w=800",
				Verification: "https://www.credential.net/example3",
			},
		},
		Notes: []Note{
			{"Deep Learning Fundamentals", "A comprehensive guide to understanding neural networks and their applications.", "https://medium.com/@jahanzebahmed/deep-learning-fundamentals"},
			{"Machine Learning Pipeline Design", "Best practices for building scalable ML pipelines in production.", "https://medium.com/@jahanzebahmed/ml-pipeline-design"},
			{"Natural Language Processing Techniques", "Advanced NLP techniques for text analysis and understanding.", "https://medium.com/@jahanzebahmed/nlp-techniques"},
			{"Data Visualization Best Practices", "Creating effective and insightful data visualizations.", "https://medium.com/@jahanzebahmed/data-viz"},
			{"Time Series Analysis", "Understanding temporal data patterns and forecasting methods.", "https://medium.com/@jahanzebahmed/time-series"},
			{"Feature Engineering Tips", "Advanced techniques for creating meaningful features.", "https://medium.com/@jahanzebahmed/feature-engineering"},
			{"Model Deployment Strategies", "Guide to deploying ML models in production environments.", "https://medium.com/@jahanzebahmed/model-deployment"},
			{"Data Ethics and AI", "Exploring ethical considerations in AI development.", "https://medium.com/@jahanzebahmed/ai-ethics"},
			{"Computer Vision Applications", "Real-world applications of computer vision technology.", "https://medium.com/@jahanzebahmed/cv-applications"},
			{"MLOps Best Practices", "Building and maintaining ML systems at scale.", "https://medium.com/@jahanzebahmed/mlops"},
		},
		Neurons: []Neuron{
			{"The Power of Data", "Data is not just numbers; it's the story of human behavior and patterns waiting to be discovered."},
			{"AI Ethics", "With great power comes great responsibility. AI must be developed with human values at its core."},
			{"Learning Systems", "The best AI systems are those that can learn and adapt, just like the human brain."},
			{"Pattern Recognition", "The ability to recognize patterns is the foundation of both human and artificial intelligence."},
			{"Innovation Through Data", "True innovation comes from understanding the patterns hidden within complex data."},
			{"Future of AI", "The future belongs to those who can bridge the gap between human intuition and machine intelligence."},
			{"Data-Driven Decisions", "The best decisions are made when data and human intuition work together."},
			{"Continuous Learning", "In the field of AI, if you're not learning, you're falling behind."},
			{"Problem Solving", "Every complex problem has a solution hidden in the data; we just need to find it."},
			{"AI Impact", "AI will not replace humans; it will amplify human capabilities and creativity."},
		},
		Social: []SocialLink{
			{Name: "LinkedIn", URL: "https://linkedin.com/in/jahanzebahmed"},
			{Name: "GitHub", URL: "https://github.com/jahanzebahmed"},
			{Name: "WhatsApp", URL: "https://wa.me/yourwhatsappnumber"},
		},
	}
}
