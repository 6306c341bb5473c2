// Package thriftfind embeds the thriftfind listing search engine in a Go
// program, backed by Valkey, Redis or a local SQLite file.
//
// Queries are turned into term groups by an LLM extractor when one is
// configured, or by the built-in keyword extractor otherwise, and listings
// are ranked by how many groups they match and in which fields.
//
//	client, _ := thriftfind.New(ctx,
//	    thriftfind.WithSQLite("data/listings.db"),
//	    thriftfind.WithOpenAI(os.Getenv("OPENAI_API_KEY"), ""),
//	)
//	defer client.Close()
//
//	_ = client.Listings().Upsert(ctx, listings...)
//	res, _ := client.Search(ctx, "vintage denim jacket", 24)
//	for _, l := range res.Listings {
//	    fmt.Println(l.Title)
//	}
//
// Term groups produced elsewhere, such as by an image captioning step, can be
// ranked directly:
//
//	res, _ := client.SearchByTerms(ctx, []thriftfind.TermGroup{
//	    {Term: "jacket"}, {Term: "denim", Variants: []string{"jean"}},
//	}, 12, "photo upload")
package thriftfind
