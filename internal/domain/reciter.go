package domain

import "strconv"

type ReciterID int

func (id ReciterID) String() string {
	return strconv.Itoa(int(id))
}

type Reciter struct {
	ID   ReciterID
	Name string
}
