package catalog

import "career-connect/internal/domain/student"

// defaultJobs is the built-in catalog of entry-level job templates, grouped
// by branch. Static data: nothing here changes at runtime.
func defaultJobs() []Job {
	return []Job{
		// Computer Science
		{
			ID:              "fullstack_1",
			Title:           "Full Stack Developer",
			Company:         "Tech Solutions Inc",
			Location:        "Bangalore, India",
			Category:        "Web Development",
			RequiredSkills:  []string{"JavaScript", "React", "Node.js", "MongoDB", "HTML", "CSS", "REST APIs", "Express", "Git"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "6-10 LPA",
			JobType:         "Full-time",
			Description:     "Build end-to-end web applications using modern JavaScript technologies and frameworks",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "datascience_1",
			Title:           "Data Science Intern",
			Company:         "AI Research Labs",
			Location:        "Hyderabad, India",
			Category:        "Data Science",
			RequiredSkills:  []string{"Python", "Machine Learning", "SQL", "Statistics", "Data Analysis", "Pandas", "NumPy"},
			ExperienceLevel: "Intern",
			SalaryRange:     "25-40k/month",
			JobType:         "Internship",
			Description:     "Work on real-world machine learning projects and data analysis tasks",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "backend_1",
			Title:           "Backend Engineer",
			Company:         "API Solutions",
			Location:        "Pune, India",
			Category:        "Software Engineering",
			RequiredSkills:  []string{"Node.js", "Python", "MongoDB", "SQL", "REST APIs", "System Design", "Authentication"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "5-8 LPA",
			JobType:         "Full-time",
			Description:     "Develop scalable backend systems and RESTful APIs for web applications",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "ml_engineer_1",
			Title:           "Machine Learning Engineer",
			Company:         "AI Innovations",
			Location:        "Bangalore, India",
			Category:        "Artificial Intelligence",
			RequiredSkills:  []string{"Python", "Machine Learning", "Deep Learning", "TensorFlow", "SQL", "Data Preprocessing"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "7-12 LPA",
			JobType:         "Full-time",
			Description:     "Build and deploy machine learning models for real-world applications",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "frontend_1",
			Title:           "Frontend Developer",
			Company:         "Web Innovations",
			Location:        "Remote",
			Category:        "Web Development",
			RequiredSkills:  []string{"JavaScript", "React", "HTML", "CSS", "TypeScript", "Responsive Design", "State Management"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-7 LPA",
			JobType:         "Full-time",
			Description:     "Create beautiful and responsive user interfaces using React and modern CSS",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "devops_1",
			Title:           "DevOps Engineer",
			Company:         "Infrastructure Tech",
			Location:        "Bangalore, India",
			Category:        "DevOps",
			RequiredSkills:  []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux", "Python", "Automation"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "6-10 LPA",
			JobType:         "Full-time",
			Description:     "Implement and maintain DevOps practices and cloud infrastructure",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "cloud_engineer_1",
			Title:           "Cloud Engineer",
			Company:         "Cloud Solutions Inc",
			Location:        "Bangalore, India",
			Category:        "Cloud Computing",
			RequiredSkills:  []string{"AWS", "Docker", "Kubernetes", "Linux", "Python", "CI/CD", "Networking"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "6-11 LPA",
			JobType:         "Full-time",
			Description:     "Design and implement cloud infrastructure solutions",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "cybersecurity_1",
			Title:           "Cybersecurity Analyst",
			Company:         "Security First",
			Location:        "Delhi, India",
			Category:        "Cybersecurity",
			RequiredSkills:  []string{"Network Security", "Ethical Hacking", "Linux", "Python", "Cryptography", "Firewalls"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "5-9 LPA",
			JobType:         "Full-time",
			Description:     "Protect systems and networks from cyber threats",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "mobile_developer_1",
			Title:           "Mobile App Developer",
			Company:         "App Innovations",
			Location:        "Hyderabad, India",
			Category:        "Mobile Development",
			RequiredSkills:  []string{"Java", "Kotlin", "Android SDK", "REST APIs", "Firebase", "Git"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-8 LPA",
			JobType:         "Full-time",
			Description:     "Develop mobile applications for Android platform",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "ai_engineer_1",
			Title:           "AI Engineer",
			Company:         "Neural Networks Inc",
			Location:        "Bangalore, India",
			Category:        "Artificial Intelligence",
			RequiredSkills:  []string{"Python", "Deep Learning", "Neural Networks", "TensorFlow", "PyTorch", "NLP"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "7-12 LPA",
			JobType:         "Full-time",
			Description:     "Develop and deploy AI models for various applications",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchComputerScience,
		},
		{
			ID:              "database_admin_1",
			Title:           "Database Administrator",
			Company:         "Data Systems Ltd",
			Location:        "Pune, India",
			Category:        "Database",
			RequiredSkills:  []string{"SQL", "Database Design", "MySQL", "PostgreSQL", "MongoDB", "Performance Tuning"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-7 LPA",
			JobType:         "Full-time",
			Description:     "Manage and optimize database systems",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchComputerScience,
		},

		// Electrical Engineering
		{
			ID:              "electrical_engineer_1",
			Title:           "Electrical Design Engineer",
			Company:         "Power Grid Solutions",
			Location:        "Noida, India",
			Category:        "Electrical Engineering",
			RequiredSkills:  []string{"Circuit Design", "MATLAB", "Embedded Systems", "Power Systems", "IoT", "Digital Electronics"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-7 LPA",
			JobType:         "Full-time",
			Description:     "Design and develop electrical circuits and power systems for industrial applications",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchElectricalEngineering,
		},
		{
			ID:              "vlsi_engineer_1",
			Title:           "VLSI Design Engineer",
			Company:         "Chip Design Labs",
			Location:        "Bangalore, India",
			Category:        "VLSI",
			RequiredSkills:  []string{"VLSI", "Digital Electronics", "Circuit Design", "MATLAB", "Embedded Systems", "Signal Processing"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "6-9 LPA",
			JobType:         "Full-time",
			Description:     "Work on Very Large Scale Integration design and semiconductor technologies",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchElectricalEngineering,
		},
		{
			ID:              "embedded_engineer_1",
			Title:           "Embedded Systems Engineer",
			Company:         "IoT Innovations",
			Location:        "Pune, India",
			Category:        "Embedded Systems",
			RequiredSkills:  []string{"Embedded Systems", "C/C++", "Microcontrollers", "IoT", "Circuit Design", "ARM Architecture"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "5-8 LPA",
			JobType:         "Full-time",
			Description:     "Develop embedded systems and IoT solutions for smart devices",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchElectricalEngineering,
		},
		{
			ID:              "power_engineer_1",
			Title:           "Power Systems Engineer",
			Company:         "Energy Solutions Ltd",
			Location:        "Hyderabad, India",
			Category:        "Power Engineering",
			RequiredSkills:  []string{"Power Systems", "Electrical Machines", "Power Electronics", "MATLAB", "Control Systems"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-6 LPA",
			JobType:         "Full-time",
			Description:     "Work on power generation, transmission and distribution systems",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchElectricalEngineering,
		},
		{
			ID:              "control_engineer_1",
			Title:           "Control Systems Engineer",
			Company:         "Automation Solutions",
			Location:        "Chennai, India",
			Category:        "Control Systems",
			RequiredSkills:  []string{"Control Systems", "MATLAB", "Simulink", "PLC", "SCADA", "Instrumentation"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-7 LPA",
			JobType:         "Full-time",
			Description:     "Design and implement control systems for industrial automation",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchElectricalEngineering,
		},
		{
			ID:              "iot_engineer_1",
			Title:           "IoT Engineer",
			Company:         "Smart Solutions",
			Location:        "Bangalore, India",
			Category:        "IoT",
			RequiredSkills:  []string{"Embedded Systems", "IoT", "Python", "Sensors", "Wireless Communication", "Cloud"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "5-8 LPA",
			JobType:         "Full-time",
			Description:     "Develop Internet of Things solutions and smart devices",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchElectricalEngineering,
		},
		{
			ID:              "renewable_energy_1",
			Title:           "Renewable Energy Engineer",
			Company:         "Green Energy Solutions",
			Location:        "Chennai, India",
			Category:        "Power Engineering",
			RequiredSkills:  []string{"Renewable Energy", "Power Systems", "MATLAB", "Project Management", "Sustainability"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-7 LPA",
			JobType:         "Full-time",
			Description:     "Work on solar, wind and other renewable energy projects",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchElectricalEngineering,
		},

		// Civil Engineering
		{
			ID:              "civil_engineer_1",
			Title:           "Site Civil Engineer",
			Company:         "Construction Masters",
			Location:        "Delhi, India",
			Category:        "Civil Engineering",
			RequiredSkills:  []string{"Structural Analysis", "AutoCAD", "Project Management", "Construction", "Surveying", "Concrete Technology"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "3-5 LPA",
			JobType:         "Full-time",
			Description:     "Supervise construction projects and ensure structural integrity",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchCivilEngineering,
		},
		{
			ID:              "structural_engineer_1",
			Title:           "Structural Design Engineer",
			Company:         "Structural Designs Inc",
			Location:        "Mumbai, India",
			Category:        "Structural Engineering",
			RequiredSkills:  []string{"Structural Analysis", "AutoCAD", "STAAD Pro", "Concrete Technology", "Steel Design", "Building Codes"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-6 LPA",
			JobType:         "Full-time",
			Description:     "Design and analyze structural components for buildings and infrastructure",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchCivilEngineering,
		},
		{
			ID:              "project_engineer_1",
			Title:           "Project Engineer - Civil",
			Company:         "Infrastructure Developers",
			Location:        "Chennai, India",
			Category:        "Project Management",
			RequiredSkills:  []string{"Project Management", "Construction", "AutoCAD", "Site Supervision", "Quality Control", "Estimation"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "3-5 LPA",
			JobType:         "Full-time",
			Description:     "Manage civil engineering projects from planning to execution",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchCivilEngineering,
		},
		{
			ID:              "geotechnical_engineer_1",
			Title:           "Geotechnical Engineer",
			Company:         "Soil Analysis Ltd",
			Location:        "Kolkata, India",
			Category:        "Geotechnical Engineering",
			RequiredSkills:  []string{"Soil Mechanics", "Foundation Design", "Geotechnical Analysis", "Site Investigation", "Geology"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-6 LPA",
			JobType:         "Full-time",
			Description:     "Analyze soil properties and design foundations for construction projects",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchCivilEngineering,
		},
		{
			ID:              "transportation_engineer_1",
			Title:           "Transportation Engineer",
			Company:         "Urban Infrastructure",
			Location:        "Delhi, India",
			Category:        "Transportation Engineering",
			RequiredSkills:  []string{"Transportation Planning", "Traffic Engineering", "Highway Design", "AutoCAD", "Surveying"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "3-5 LPA",
			JobType:         "Full-time",
			Description:     "Design and plan transportation systems and infrastructure",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchCivilEngineering,
		},
		{
			ID:              "construction_manager_1",
			Title:           "Construction Manager",
			Company:         "BuildRight Constructions",
			Location:        "Mumbai, India",
			Category:        "Construction Management",
			RequiredSkills:  []string{"Construction Management", "Project Planning", "Quality Control", "Safety Standards", "Budgeting"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-7 LPA",
			JobType:         "Full-time",
			Description:     "Oversee construction projects and manage teams on site",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchCivilEngineering,
		},
		{
			ID:              "environmental_engineer_1",
			Title:           "Environmental Engineer",
			Company:         "Eco Solutions",
			Location:        "Delhi, India",
			Category:        "Environmental Engineering",
			RequiredSkills:  []string{"Environmental Science", "Water Treatment", "Waste Management", "Sustainability"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "3-5 LPA",
			JobType:         "Full-time",
			Description:     "Work on environmental protection and sustainability projects",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchCivilEngineering,
		},

		// Mechanical Engineering
		{
			ID:              "mechanical_engineer_1",
			Title:           "Mechanical Design Engineer",
			Company:         "Auto Components Ltd",
			Location:        "Chennai, India",
			Category:        "Mechanical Engineering",
			RequiredSkills:  []string{"CAD/CAM", "Thermodynamics", "Machine Design", "Manufacturing", "Automotive", "Robotics", "SolidWorks"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-6 LPA",
			JobType:         "Full-time",
			Description:     "Design mechanical components and systems for automotive applications",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchMechanicalEngineering,
		},
		{
			ID:              "automotive_engineer_1",
			Title:           "Automotive Engineer",
			Company:         "Auto Manufacturers",
			Location:        "Pune, India",
			Category:        "Automotive",
			RequiredSkills:  []string{"Automotive Systems", "CAD/CAM", "Thermodynamics", "Vehicle Dynamics", "Manufacturing", "Engine Systems"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "4-7 LPA",
			JobType:         "Full-time",
			Description:     "Work on automotive design, development and testing",
			GrowthPotential: "High",
			BranchAffinity:  student.BranchMechanicalEngineering,
		},
		{
			ID:              "production_engineer_1",
			Title:           "Production Engineer",
			Company:         "Manufacturing Solutions",
			Location:        "Coimbatore, India",
			Category:        "Manufacturing",
			RequiredSkills:  []string{"Manufacturing", "Production Planning", "Quality Control", "CAD/CAM", "CNC", "Lean Manufacturing"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "3-5 LPA",
			JobType:         "Full-time",
			Description:     "Optimize production processes and ensure manufacturing quality",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchMechanicalEngineering,
		},
		{
			ID:              "robotics_engineer_1",
			Title:           "Robotics Engineer",
			Company:         "Automation Tech",
			Location:        "Bangalore, India",
			Category:        "Robotics",
			RequiredSkills:  []string{"Robotics", "Automation", "CAD/CAM", "Control Systems", "Programming", "Mechanical Design"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "5-8 LPA",
			JobType:         "Full-time",
			Description:     "Design and develop robotic systems and automation solutions",
			GrowthPotential: "Very High",
			BranchAffinity:  student.BranchMechanicalEngineering,
		},
		{
			ID:              "hvac_engineer_1",
			Title:           "HVAC Engineer",
			Company:         "Climate Solutions",
			Location:        "Delhi, India",
			Category:        "HVAC",
			RequiredSkills:  []string{"HVAC", "Thermodynamics", "Heat Transfer", "CAD", "Building Systems", "Energy Efficiency"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "3-5 LPA",
			JobType:         "Full-time",
			Description:     "Design heating, ventilation and air conditioning systems for buildings",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchMechanicalEngineering,
		},
		{
			ID:              "quality_engineer_1",
			Title:           "Quality Engineer",
			Company:         "Precision Manufacturing",
			Location:        "Coimbatore, India",
			Category:        "Manufacturing",
			RequiredSkills:  []string{"Quality Control", "Six Sigma", "Statistical Analysis", "Manufacturing Processes"},
			ExperienceLevel: "Fresher",
			SalaryRange:     "3-5 LPA",
			JobType:         "Full-time",
			Description:     "Ensure product quality and process efficiency",
			GrowthPotential: "Medium",
			BranchAffinity:  student.BranchMechanicalEngineering,
		},
	}
}
