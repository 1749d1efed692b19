package leads

// SampleLeads returns the 15-company RAK/Sharjah demo fixture. This is sample
// data for local testing and first-run verification, not scraped content.
// Status and DateAdded are left for the store to fill at insert time.
func SampleLeads() []Lead {
	return []Lead{
		{
			Name: "Ahmed Hassan Al Qasimi", Title: "IT Director", Company: "RAK Ceramics",
			Location: "Ras Al Khaimah, UAE", Industry: "Manufacturing", CompanySize: "1000+",
			LinkedInURL: "https://linkedin.com/in/ahmed-hassan-alqasimi",
			Email1:      "ahmed.hassan@rakceramics.com", Email2: "a.hassan@rakceramics.com", Email3: "ahmed@rakceramics.com",
			Phone: "+971 7 244 8222", WhatsApp: "+971 50 123 4567",
			Website:          "https://www.rakceramics.com",
			ProductsInterest: "Rack Servers, Desktop Computers, AMC Contracts",
			Score:            92,
			Notes:            "Large manufacturing company, likely needs GPU servers for AI quality control",
			NextAction:       "Send LinkedIn connection request",
		},
		{
			Name: "Fatima Mohammed", Title: "Chief Technology Officer", Company: "RAK Petroleum",
			Location: "Ras Al Khaimah, UAE", Industry: "Oil & Energy", CompanySize: "500-1000",
			LinkedInURL: "https://linkedin.com/in/fatima-mohammed-rak",
			Email1:      "fatima.mohammed@rakpet.com", Email2: "f.mohammed@rakpet.com", Email3: "fatima@rakpet.com",
			Phone: "+971 7 206 3000", WhatsApp: "+971 55 987 6543",
			Website:          "https://www.rakpet.com",
			ProductsInterest: "GPU Servers, Storage Systems, Data Center Equipment",
			Score:            95,
			Notes:            "Oil & gas company, high budget for AI/ML infrastructure",
			NextAction:       "Call directly today",
		},
		{
			Name: "Rajesh Kumar", Title: "IT Infrastructure Manager", Company: "American University of Ras Al Khaimah",
			Location: "Ras Al Khaimah, UAE", Industry: "Education", CompanySize: "200-500",
			LinkedInURL: "https://linkedin.com/in/rajesh-kumar-aurak",
			Email1:      "rajesh.kumar@aurak.ac.ae", Email2: "r.kumar@aurak.ac.ae", Email3: "rajesh@aurak.ac.ae",
			Phone: "+971 7 228 8111", WhatsApp: "+971 56 789 0123",
			Website:          "https://www.aurak.ac.ae",
			ProductsInterest: "Desktop Computers, Rack Servers, Campus IT Infrastructure",
			Score:            78,
			Notes:            "University expansion plans, annual IT budget renewal in Q3",
			NextAction:       "Email with education sector case studies",
		},
		{
			Name: "Sarah Al Nahyan", Title: "VP of Technology", Company: "RAK Hospital",
			Location: "Ras Al Khaimah, UAE", Industry: "Healthcare", CompanySize: "500-1000",
			LinkedInURL: "https://linkedin.com/in/sarah-alnahyan",
			Email1:      "sarah.alnahyan@rakhospital.com", Email2: "s.alnahyan@rakhospital.com", Email3: "sarah@rakhospital.com",
			Phone: "+971 7 206 6666", WhatsApp: "+971 50 234 5678",
			Website:          "https://www.rakhospital.com",
			ProductsInterest: "Medical Imaging Servers, Data Storage, AMC Contracts",
			Score:            88,
			Notes:            "Hospital digitization project, AI radiology implementation planned",
			NextAction:       "Send healthcare solutions deck",
		},
		{
			Name: "Mohammed Ali Bin Rashid", Title: "Director of IT", Company: "Sharjah Airport International",
			Location: "Sharjah, UAE", Industry: "Aviation", CompanySize: "1000+",
			LinkedInURL: "https://linkedin.com/in/mohammed-binrashid",
			Email1:      "mohammed.ali@shj-airport.ae", Email2: "m.ali@shj-airport.ae", Email3: "mohammed@shj-airport.ae",
			Phone: "+971 6 558 1111", WhatsApp: "+971 50 345 6789",
			Website:          "https://www.shj-airport.ae",
			ProductsInterest: "High-Performance Servers, Networking Equipment, Security Systems",
			Score:            94,
			Notes:            "Airport expansion project, security & AI systems upgrade",
			NextAction:       "Request meeting with decision committee",
		},
		{
			Name: "Priya Sharma", Title: "IT Manager", Company: "Sharjah Electricity and Water Authority",
			Location: "Sharjah, UAE", Industry: "Utilities", CompanySize: "500-1000",
			LinkedInURL: "https://linkedin.com/in/priya-sharma-sewa",
			Email1:      "priya.sharma@sewa.gov.ae", Email2: "p.sharma@sewa.gov.ae", Email3: "priya@sewa.gov.ae",
			Phone: "+971 6 528 8888", WhatsApp: "+971 55 456 7890",
			Website:          "https://www.sewa.gov.ae",
			ProductsInterest: "Industrial Servers, IoT Infrastructure, Smart Grid Systems",
			Score:            85,
			Notes:            "Smart city initiative, IoT sensor network deployment",
			NextAction:       "Propose IoT infrastructure solution",
		},
		{
			Name: "Khalid Abdullah", Title: "Head of Technology", Company: "Sharjah Islamic Bank",
			Location: "Sharjah, UAE", Industry: "Banking & Finance", CompanySize: "200-500",
			LinkedInURL: "https://linkedin.com/in/khalid-abdullah-sib",
			Email1:      "khalid.abdullah@sib.ae", Email2: "k.abdullah@sib.ae", Email3: "khalid@sib.ae",
			Phone: "+971 6 599 9999", WhatsApp: "+971 50 567 8901",
			Website:          "https://www.sib.ae",
			ProductsInterest: "Secure Servers, Data Backup Systems, Core Banking Infrastructure",
			Score:            91,
			Notes:            "Digital banking transformation, core banking system upgrade Q4",
			NextAction:       "Schedule technical discussion",
		},
		{
			Name: "Jennifer Williams", Title: "IT Procurement Manager", Company: "University of Sharjah",
			Location: "Sharjah, UAE", Industry: "Education", CompanySize: "1000+",
			LinkedInURL: "https://linkedin.com/in/jennifer-williams-uos",
			Email1:      "jennifer.williams@sharjah.ac.ae", Email2: "j.williams@sharjah.ac.ae", Email3: "jennifer@sharjah.ac.ae",
			Phone: "+971 6 505 5000", WhatsApp: "+971 56 678 9012",
			Website:          "https://www.sharjah.ac.ae",
			ProductsInterest: "Research Compute Servers, GPU Clusters, Campus Infrastructure",
			Score:            82,
			Notes:            "AI research lab expansion, tender expected next month",
			NextAction:       "Send tender proposal template",
		},
		{
			Name: "Omar Hassan", Title: "CTO", Company: "Air Arabia",
			Location: "Sharjah, UAE", Industry: "Aviation", CompanySize: "1000+",
			LinkedInURL: "https://linkedin.com/in/omar-hassan-airarabia",
			Email1:      "omar.hassan@airarabia.com", Email2: "o.hassan@airarabia.com", Email3: "omar@airarabia.com",
			Phone: "+971 6 508 0000", WhatsApp: "+971 50 789 0123",
			Website:          "https://www.airarabia.com",
			ProductsInterest: "Cloud Infrastructure, Mobile App Servers, Customer Data Systems",
			Score:            93,
			Notes:            "Digital transformation ongoing, mobile app infrastructure upgrade",
			NextAction:       "Present cloud migration strategy",
		},
		{
			Name: "Nadia Khalfan", Title: "Infrastructure Director", Company: "Sharjah Media City",
			Location: "Sharjah, UAE", Industry: "Media & Entertainment", CompanySize: "200-500",
			LinkedInURL: "https://linkedin.com/in/nadia-khalfan-shams",
			Email1:      "nadia.khalfan@shams.ae", Email2: "n.khalfan@shams.ae", Email3: "nadia@shams.ae",
			Phone: "+971 6 556 6666", WhatsApp: "+971 55 890 1234",
			Website:          "https://www.shams.ae",
			ProductsInterest: "Video Production Servers, Storage Arrays, Rendering Farms",
			Score:            80,
			Notes:            "Media production expansion, 4K/8K video rendering infrastructure needed",
			NextAction:       "Demo rendering farm solution",
		},
		{
			Name: "David Chen", Title: "IT Systems Manager", Company: "Julphar Pharmaceuticals",
			Location: "Ras Al Khaimah, UAE", Industry: "Pharmaceuticals", CompanySize: "500-1000",
			LinkedInURL: "https://linkedin.com/in/david-chen-julphar",
			Email1:      "david.chen@julphar.net", Email2: "d.chen@julphar.net", Email3: "david@julphar.net",
			Phone: "+971 7 233 6000", WhatsApp: "+971 56 901 2345",
			Website:          "https://www.julphar.net",
			ProductsInterest: "Lab Servers, Research Computing, Quality Control Systems",
			Score:            86,
			Notes:            "R&D lab digitization, AI drug discovery systems interest",
			NextAction:       "Share pharma industry case studies",
		},
		{
			Name: "Laila Mohammed", Title: "Technology Manager", Company: "RAK Free Trade Zone",
			Location: "Ras Al Khaimah, UAE", Industry: "Government/Free Zone", CompanySize: "200-500",
			LinkedInURL: "https://linkedin.com/in/laila-mohammed-rakftz",
			Email1:      "laila.mohammed@rakftz.com", Email2: "l.mohammed@rakftz.com", Email3: "laila@rakftz.com",
			Phone: "+971 7 204 1111", WhatsApp: "+971 50 012 3456",
			Website:          "https://www.rakftz.com",
			ProductsInterest: "Office IT Infrastructure, Server Systems, Security Equipment",
			Score:            75,
			Notes:            "Free zone expansion, tenant support infrastructure upgrade",
			NextAction:       "Email infrastructure proposal",
		},
		{
			Name: "Michael Roberts", Title: "Chief Information Officer", Company: "RAK Tourism Development Authority",
			Location: "Ras Al Khaimah, UAE", Industry: "Tourism & Hospitality", CompanySize: "100-200",
			LinkedInURL: "https://linkedin.com/in/michael-roberts-raktda",
			Email1:      "michael.roberts@raktda.com", Email2: "m.roberts@raktda.com", Email3: "michael@raktda.com",
			Phone: "+971 7 228 8844", WhatsApp: "+971 55 123 4567",
			Website:          "https://www.visitrak.ae",
			ProductsInterest: "Cloud Servers, Mobile Backend, Analytics Systems",
			Score:            77,
			Notes:            "Tourism digital platform upgrade, mobile app infrastructure",
			NextAction:       "Propose cloud-based tourism platform",
		},
		{
			Name: "Zainab Ali", Title: "IT Director", Company: "Sharjah Commerce and Tourism Development Authority",
			Location: "Sharjah, UAE", Industry: "Tourism & Government", CompanySize: "100-200",
			LinkedInURL: "https://linkedin.com/in/zainab-ali-sctda",
			Email1:      "zainab.ali@sctda.gov.ae", Email2: "z.ali@sctda.gov.ae", Email3: "zainab@sctda.gov.ae",
			Phone: "+971 6 556 7777", WhatsApp: "+971 56 234 5678",
			Website:          "https://www.sctda.gov.ae",
			ProductsInterest: "Government IT Systems, Public WiFi Infrastructure, Data Centers",
			Score:            79,
			Notes:            "Smart tourism initiative, public infrastructure modernization",
			NextAction:       "Government solutions presentation",
		},
		{
			Name: "Sanjay Patel", Title: "Senior IT Manager", Company: "National Cement Company",
			Location: "Ras Al Khaimah, UAE", Industry: "Manufacturing", CompanySize: "500-1000",
			LinkedInURL: "https://linkedin.com/in/sanjay-patel-ncc",
			Email1:      "sanjay.patel@ncc.ae", Email2: "s.patel@ncc.ae", Email3: "sanjay@ncc.ae",
			Phone: "+971 7 244 6666", WhatsApp: "+971 50 345 6789",
			Website:          "https://www.ncc.ae",
			ProductsInterest: "Industrial Automation Servers, IoT Gateways, ERP Systems",
			Score:            81,
			Notes:            "Factory automation project, Industry 4.0 implementation",
			NextAction:       "Schedule factory tour and demo",
		},
	}
}
