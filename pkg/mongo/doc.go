// Package mongo connects to MongoDB for the document backend.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	src := source.NewMongoFromDatabase(db)
package mongo
