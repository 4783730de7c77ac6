package jobsapimodels

import "github.com/lib/pq"

func dbSkillTags(tags []string) pq.StringArray {
	if tags == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(tags)
}
