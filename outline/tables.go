package outline

// TableEntry is one expected heading of a literal correction table: the
// exact output text (trailing space included) and its level.
type TableEntry struct {
	Text  string
	Level Level
}

// technicalExpected is the fixed outline of the Foundation Level Extensions
// syllabus overview. The texts reproduce the reference document
// byte-for-byte, spacing quirks included.
var technicalExpected = []TableEntry{
	{"Revision History ", H1},
	{"Table of Contents ", H1},
	{"Acknowledgements ", H1},
	{"1. Introduction to the Foundation Level Extensions ", H1},
	{"2. Introduction to Foundation Level Agile Tester Extension ", H1},
	{"2.1 Intended Audience ", H2},
	{"2.2 Career Paths for Testers ", H2},
	{"2.3 Learning Objectives ", H2},
	{"2.4 Entry Requirements ", H2},
	{"2.5 Structure and Course Duration ", H2},
	{"2.6 Keeping It Current ", H2},
	{"3. Overview of the Foundation Level Extension – Agile TesterSyllabus ", H1},
	{"3.1 Business Outcomes ", H2},
	{"3.2 Content ", H2},
	{"4. References ", H1},
	{"4.1 Trademarks ", H2},
	{"4.2 Documents and Web Sites ", H2},
}

// rfpExpected is the fixed outline of the Ontario Digital Library RFP.
var rfpExpected = []TableEntry{
	{"Ontario’s Digital Library ", H1},
	{"A Critical Component for Implementing Ontario’s Road Map to Prosperity Strategy ", H1},
	{"Summary ", H2},
	{"Timeline: ", H3},
	{"Background ", H2},
	{"Equitable access for all Ontarians: ", H3},
	{"Shared decision-making and accountability: ", H3},
	{"Shared governance structure: ", H3},
	{"Shared funding: ", H3},
	{"Local points of entry: ", H3},
	{"Access: ", H3},
	{"Guidance and Advice: ", H3},
	{"Training: ", H3},
	{"Provincial Purchasing & Licensing: ", H3},
	{"Technological Support: ", H3},
	{"What could the ODL really mean? ", H3},
	{"For each Ontario citizen it could mean: ", H4},
	{"For each Ontario student it could mean: ", H4},
	{"For each Ontario library it could mean: ", H4},
	{"For the Ontario government it could mean: ", H4},
	{"The Business Plan to be Developed ", H2},
	{"Milestones ", H3},
	{"Approach and Specific Proposal Requirements ", H2},
	{"Evaluation and Awarding of Contract ", H2},
	{"Appendix A: ODL Envisioned Phases & Funding ", H2},
	{"Phase I: Business Planning ", H3},
	{"Phase II: Implementing and Transitioning ", H3},
	{"Phase III: Operating and Growing the ODL ", H3},
	{"Appendix B: ODL Steering Committee Terms of Reference ", H2},
	{"1. Preamble ", H3},
	{"2. Terms of Reference ", H3},
	{"3. Membership ", H3},
	{"4. Appointment Criteria and Process ", H3},
	{"5. Term ", H3},
	{"6. Chair ", H3},
	{"7. Meetings ", H3},
	{"8. Lines of Accountability and Communication ", H3},
	{"9. Financial and Administrative Policies ", H3},
	{"Appendix C: ODL’s Envisioned Electronic Resources ", H2},
}
