package archive

import "github.com/archiveinsight/backend/internal/domain"

// SeedProjects returns the reference archive used by the in-memory store and
// the `archive seed` command. A fresh slice is returned on every call.
func SeedProjects() []domain.ArchivedProject {
	return []domain.ArchivedProject{
		{
			ID:               "proj-001",
			Title:            "Smart Traffic Management System Using Deep Learning",
			UserID:           "user-101",
			Year:             2024,
			Branch:           "Computer Science",
			Description:      "An AI-powered system that optimizes traffic flow in urban areas using real-time video analysis and adaptive signal control.",
			Technologies:     []string{"Python", "TensorFlow", "OpenCV", "Flask", "YOLO", "PostgreSQL"},
			ProblemStatement: "Urban traffic congestion leads to significant economic losses, increased pollution, and reduced quality of life. Traditional traffic management systems rely on fixed timing patterns that cannot adapt to real-time traffic conditions.",
			Objective:        "To develop an intelligent traffic management system that uses deep learning to analyze real-time traffic data and optimize signal timing for improved traffic flow and reduced congestion.",
			Approach:         "The system employs convolutional neural networks trained on traffic camera feeds to detect and count vehicles, estimate traffic density, and predict traffic patterns. An adaptive algorithm adjusts signal timing based on current and predicted traffic conditions.",
			ExpectedOutcome:  "30% reduction in average wait times at intersections, 25% improvement in traffic throughput, and 20% reduction in vehicle emissions due to reduced idling time.",
			Keywords:         []string{"traffic management", "deep learning", "computer vision", "smart city", "CNN", "real-time analysis"},
		},
		{
			ID:               "proj-002",
			Title:            "Blockchain-Based Academic Credential Verification",
			UserID:           "user-102",
			Year:             2024,
			Branch:           "Information Technology",
			Description:      "A decentralized platform for issuing, storing, and verifying academic credentials using blockchain technology.",
			Technologies:     []string{"Solidity", "Ethereum", "React", "Node.js", "IPFS", "Web3.js"},
			ProblemStatement: "Academic credential fraud is a growing problem worldwide, with forged degrees and certificates undermining trust in educational qualifications and causing significant economic and social harm.",
			Objective:        "To create a tamper-proof, decentralized system for academic credential verification that eliminates fraud and streamlines the verification process for employers and institutions.",
			Approach:         "Smart contracts on the Ethereum blockchain store cryptographic hashes of academic credentials. Educational institutions act as verified issuers, while employers and other verifiers can instantly validate credentials without intermediaries.",
			ExpectedOutcome:  "Near-instant credential verification, elimination of document forgery, reduced administrative overhead for institutions, and increased trust in academic qualifications.",
			Keywords:         []string{"blockchain", "credentials", "verification", "smart contracts", "Ethereum", "education"},
		},
		{
			ID:               "proj-003",
			Title:            "Natural Language Processing for Mental Health Support",
			UserID:           "user-103",
			Year:             2023,
			Branch:           "Computer Science",
			Description:      "An AI chatbot that provides preliminary mental health support through empathetic conversation and resource recommendations.",
			Technologies:     []string{"Python", "BERT", "FastAPI", "React", "PostgreSQL", "Redis"},
			ProblemStatement: "Mental health services are overwhelmed globally, with long wait times and limited accessibility preventing many individuals from receiving timely support during psychological distress.",
			Objective:        "To develop an NLP-powered chatbot that can provide 24/7 preliminary mental health support, detect signs of distress, and guide users to appropriate professional resources.",
			Approach:         "Fine-tuned BERT models analyze user messages for emotional content and distress indicators. The system generates empathetic responses using a combination of retrieval and generation techniques, while maintaining appropriate boundaries and escalation protocols.",
			ExpectedOutcome:  "Improved accessibility to mental health support, reduced barrier to seeking help, early detection of mental health crises, and better triage for professional services.",
			Keywords:         []string{"NLP", "mental health", "chatbot", "BERT", "sentiment analysis", "healthcare"},
		},
		{
			ID:               "proj-004",
			Title:            "IoT-Based Precision Agriculture Monitoring System",
			UserID:           "user-104",
			Year:             2023,
			Branch:           "Electronics",
			Description:      "A comprehensive sensor network for monitoring soil conditions, weather, and crop health to optimize agricultural practices.",
			Technologies:     []string{"Arduino", "Raspberry Pi", "Python", "AWS IoT", "TensorFlow Lite", "InfluxDB"},
			ProblemStatement: "Traditional farming methods often lead to inefficient resource usage, with over-irrigation, excessive fertilizer application, and delayed response to pest infestations causing economic and environmental harm.",
			Objective:        "To implement an IoT-based monitoring system that provides real-time data on agricultural conditions, enabling data-driven decisions for optimal crop management.",
			Approach:         "Distributed sensor nodes collect data on soil moisture, temperature, humidity, and nutrient levels. Edge computing devices process local data while a cloud platform aggregates information for analysis and predictive modeling.",
			ExpectedOutcome:  "20% reduction in water usage, 15% decrease in fertilizer costs, early pest detection, and 25% improvement in crop yield through optimized growing conditions.",
			Keywords:         []string{"IoT", "precision agriculture", "sensors", "sustainability", "edge computing", "monitoring"},
		},
		{
			ID:               "proj-005",
			Title:            "Federated Learning for Privacy-Preserving Healthcare Analytics",
			UserID:           "user-105",
			Year:             2024,
			Branch:           "Computer Science",
			Description:      "A distributed machine learning framework that enables collaborative healthcare research while keeping patient data at local institutions.",
			Technologies:     []string{"Python", "TensorFlow Federated", "Flask", "Docker", "gRPC", "MongoDB"},
			ProblemStatement: "Healthcare institutions hold valuable patient data that could advance medical research, but privacy regulations and data protection concerns prevent data sharing and centralized analysis.",
			Objective:        "To develop a federated learning framework that allows multiple healthcare institutions to collaboratively train machine learning models without sharing raw patient data.",
			Approach:         "Local models are trained on patient data at each institution, with only model updates shared to a central aggregator. Differential privacy techniques add additional protection against potential information leakage.",
			ExpectedOutcome:  "Enable collaborative research across institutions, maintain patient privacy, achieve model performance comparable to centralized training, and accelerate medical AI development.",
			Keywords:         []string{"federated learning", "healthcare", "privacy", "machine learning", "differential privacy", "distributed computing"},
		},
		{
			ID:               "proj-006",
			Title:            "Augmented Reality Navigation for Visually Impaired",
			UserID:           "user-106",
			Year:             2023,
			Branch:           "Computer Science",
			Description:      "A smartphone application using AR and computer vision to assist visually impaired individuals with indoor navigation and obstacle detection.",
			Technologies:     []string{"Unity", "ARCore", "TensorFlow", "Android", "Firebase", "Text-to-Speech API"},
			ProblemStatement: "Visually impaired individuals face significant challenges navigating unfamiliar indoor environments, where GPS is ineffective and traditional assistive tools provide limited spatial awareness.",
			Objective:        "To create an AR-based navigation system that provides real-time audio guidance for indoor navigation, obstacle detection, and point-of-interest identification.",
			Approach:         "The system uses ARCore for spatial mapping and object detection models identify obstacles, doorways, and signage. Audio and haptic feedback guide users through environments with 3D spatial audio cues.",
			ExpectedOutcome:  "Improved independence for visually impaired users, reduced navigation errors, faster travel times in unfamiliar buildings, and enhanced safety through proactive obstacle detection.",
			Keywords:         []string{"augmented reality", "accessibility", "navigation", "computer vision", "spatial audio", "mobile"},
		},
		{
			ID:               "proj-007",
			Title:            "Quantum-Resistant Cryptographic Protocol Implementation",
			UserID:           "user-107",
			Year:             2024,
			Branch:           "Cybersecurity",
			Description:      "Implementation and analysis of post-quantum cryptographic algorithms for securing communications against future quantum computing threats.",
			Technologies:     []string{"Rust", "Python", "OpenSSL", "liboqs", "CRYSTALS-Kyber", "CRYSTALS-Dilithium"},
			ProblemStatement: "Current public-key cryptographic systems are vulnerable to attacks by quantum computers, threatening the security of encrypted communications and digital signatures in the near future.",
			Objective:        "To implement and evaluate post-quantum cryptographic algorithms, providing a practical framework for transitioning existing systems to quantum-resistant encryption.",
			Approach:         "Implementation of NIST-selected post-quantum algorithms including CRYSTALS-Kyber for key encapsulation and CRYSTALS-Dilithium for digital signatures. Performance analysis compares classical and post-quantum approaches.",
			ExpectedOutcome:  "Production-ready implementations of quantum-resistant algorithms, comprehensive performance benchmarks, and migration guidelines for existing cryptographic infrastructure.",
			Keywords:         []string{"post-quantum cryptography", "lattice cryptography", "key encapsulation", "digital signatures", "NIST", "security"},
		},
		{
			ID:               "proj-008",
			Title:            "Microservices-Based E-Learning Platform Architecture",
			UserID:           "user-108",
			Year:             2023,
			Branch:           "Software Engineering",
			Description:      "A scalable e-learning platform designed with microservices architecture to handle variable workloads and enable rapid feature development.",
			Technologies:     []string{"Java", "Spring Boot", "Kubernetes", "React", "Apache Kafka", "PostgreSQL", "Redis"},
			ProblemStatement: "Traditional monolithic e-learning platforms struggle to scale during peak usage periods and require extensive downtime for updates, limiting their ability to serve growing user bases.",
			Objective:        "To design and implement a microservices-based e-learning architecture that provides horizontal scalability, fault isolation, and continuous deployment capabilities.",
			Approach:         "The platform is decomposed into independent services for user management, content delivery, assessments, and analytics. Kubernetes orchestration enables automatic scaling and self-healing capabilities.",
			ExpectedOutcome:  "99.9% uptime during peak periods, sub-second page load times, zero-downtime deployments, and reduced time-to-market for new features.",
			Keywords:         []string{"microservices", "e-learning", "Kubernetes", "cloud native", "scalability", "DevOps"},
		},
		{
			ID:               "proj-009",
			Title:            "Computer Vision for Manufacturing Quality Control",
			UserID:           "user-109",
			Year:             2024,
			Branch:           "Mechanical Engineering",
			Description:      "An automated visual inspection system for detecting defects in manufactured components using deep learning and industrial cameras.",
			Technologies:     []string{"Python", "PyTorch", "OpenCV", "ROS", "ONNX", "Industrial Cameras"},
			ProblemStatement: "Manual quality inspection in manufacturing is slow, inconsistent, and prone to human error, leading to defective products reaching customers and costly recalls.",
			Objective:        "To develop an automated visual inspection system that can detect surface defects, dimensional variations, and assembly errors with superhuman accuracy and speed.",
			Approach:         "High-resolution industrial cameras capture images of components on the production line. Specialized CNN architectures trained on defect datasets classify and localize anomalies in real-time.",
			ExpectedOutcome:  "99.5% defect detection rate, 50% reduction in quality control costs, real-time feedback for process optimization, and traceability through digital records.",
			Keywords:         []string{"quality control", "computer vision", "manufacturing", "defect detection", "automation", "deep learning"},
		},
	}
}
