package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		JobFamiliesSeeder{},
		OrganizationsSeeder{},
		AnnouncementsSeeder{},
	}
}
