package mcpserver

// PortfolioFormatContract describes the canonical portfolio document shape
// that LLM consumers should follow when updating sections.
const PortfolioFormatContract = `# Mannaz Portfolio Document Format

The portfolio is a single JSON document with eight content sections. Sections
are replaced wholesale on update: always send the complete section, never a
fragment.

## Sections

` + "```" + `json
{
  "personal": {
    "name": "...",          // REQUIRED
    "title": "...",         // REQUIRED
    "tagline": "...",
    "description": "...",
    "email": "...",
    "phone": "...",
    "location": "...",
    "avatar": "https://..."
  },
  "socialLinks": {
    "github": "https://...",
    "linkedin": "https://...",
    "geeksforgeeks": "https://...",
    "leetcode": "https://..."
  },
  "skills": [
    {
      "category": "...",    // REQUIRED
      "items": [
        { "name": "...", "level": 90, "icon": "" }   // level is 0-100
      ]
    }
  ],
  "projects": [
    {
      "id": 1,
      "title": "...",       // REQUIRED
      "description": "...",
      "longDescription": "...",
      "image": "https://...",
      "tags": ["..."],
      "liveUrl": "https://...",
      "githubUrl": "https://...",
      "featured": true
    }
  ],
  "experience": [
    {
      "id": 1,
      "title": "...",       // REQUIRED
      "company": "...",     // REQUIRED
      "duration": "...",
      "location": "...",
      "description": "...",
      "achievements": ["..."]
    }
  ],
  "certifications": [
    { "id": 1, "title": "...", "issuer": "...", "date": "...", "image": "", "credentialId": "" }
  ],
  "achievements": [
    { "id": 1, "title": "...", "description": "...", "icon": "", "date": "..." }
  ],
  "codingProfiles": [
    {
      "platform": "...",    // REQUIRED
      "username": "...",    // REQUIRED
      "stats": { "repositories": 10, "stars": 5 },   // sparse; include only known counters
      "icon": "",
      "url": "https://..."
    }
  ]
}
` + "```" + `

## Rules

1. **Lists are ordered.** They render in the given order; there is no implicit sorting.
2. **Skill levels** are integers from 0 to 100.
3. **Item ids** inside lists are plain client-chosen integers; they are content,
   not database keys.
4. **Stats are sparse.** Omit counters a platform does not report; do not send null.
5. **id, createdAt and updatedAt** of the document itself are server-controlled;
   never send them.
6. **Media URLs** may point at uploaded files under /api/media/ or any external URL.
`
