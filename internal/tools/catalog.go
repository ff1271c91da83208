package tools

// Catalog returns every family in the order tools are listed.
func Catalog() []*Family {
	return []*Family{
		appsFamily(),
		databasesFamily(),
		storageFamily(),
		domainsFamily(),
		dnsFamily(),
		disksFamily(),
		vmsFamily(),
		mailFamily(),
		networksFamily(),
		plansFamily(),
		envFamily(),
		deploymentsFamily(),
		settingsFamily(),
		observabilityFamily(),
		accountFamily(),
	}
}
